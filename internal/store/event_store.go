package store

import (
	"database/sql"
	"time"

	"github.com/creatorhub/creatorhub-be/internal/models"
)

// EventStore defines the persistence interface for activity events.
type EventStore interface {
	// Insert records a new event.
	Insert(event models.Event) error
	// Recent retrieves the most recent events, newest first.
	Recent(limit int) ([]models.Event, error)
	// DeleteBefore removes events created before the cutoff and returns the
	// number removed.
	DeleteBefore(cutoff time.Time) (int64, error)
}

// SQLEventStore is the SQLite-backed EventStore.
type SQLEventStore struct {
	db *sql.DB
}

// NewEventStore creates a new SQLEventStore.
func NewEventStore(db *sql.DB) *SQLEventStore {
	return &SQLEventStore{db: db}
}

// Insert records a new event.
func (s *SQLEventStore) Insert(event models.Event) error {
	stmt, err := s.db.Prepare("INSERT INTO events (id, type, message, creator_id) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(event.ID, event.Type, event.Message, event.CreatorID)
	return err
}

// Recent retrieves the most recent events.
func (s *SQLEventStore) Recent(limit int) ([]models.Event, error) {
	rows, err := s.db.Query("SELECT id, type, message, creator_id, created_at FROM events ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Message, &event.CreatorID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// DeleteBefore removes events older than the cutoff. The cutoff is rendered
// in the same layout CURRENT_TIMESTAMP writes, so the text comparison orders
// correctly.
func (s *SQLEventStore) DeleteBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM events WHERE created_at < ?", cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
