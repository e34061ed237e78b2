package store

import (
	"database/sql"
	"strings"

	"github.com/creatorhub/creatorhub-be/internal/models"
)

// CreatorStore defines the persistence interface for creator accounts.
type CreatorStore interface {
	// GetByID retrieves a creator by ID. The password hash is not populated.
	GetByID(id string) (models.Creator, error)
	// GetByEmail retrieves a creator by email, including the password hash.
	GetByEmail(email string) (models.Creator, error)
	// Create inserts a new creator. Returns ErrDuplicateEmail if the email
	// is already registered.
	Create(creator models.Creator) (models.Creator, error)
	// Delete removes a creator by ID.
	Delete(id string) error
}

// SQLCreatorStore is the SQLite-backed CreatorStore.
type SQLCreatorStore struct {
	db *sql.DB
}

// NewCreatorStore creates a new SQLCreatorStore.
func NewCreatorStore(db *sql.DB) *SQLCreatorStore {
	return &SQLCreatorStore{db: db}
}

// GetByID retrieves a single creator by their ID, excluding the password hash.
func (s *SQLCreatorStore) GetByID(id string) (models.Creator, error) {
	var creator models.Creator
	var avatar sql.NullString
	row := s.db.QueryRow("SELECT id, name, email, avatar, created_at FROM creators WHERE id = ?", id)
	err := row.Scan(&creator.ID, &creator.Name, &creator.Email, &avatar, &creator.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Creator{}, ErrNotFound
		}
		return models.Creator{}, err
	}
	creator.Avatar = avatar.String
	return creator, nil
}

// GetByEmail retrieves a single creator by their email, including the password hash.
func (s *SQLCreatorStore) GetByEmail(email string) (models.Creator, error) {
	var creator models.Creator
	var avatar sql.NullString
	row := s.db.QueryRow("SELECT id, name, email, password_hash, avatar, created_at FROM creators WHERE email = ?", email)
	err := row.Scan(&creator.ID, &creator.Name, &creator.Email, &creator.PasswordHash, &avatar, &creator.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Creator{}, ErrNotFound
		}
		return models.Creator{}, err
	}
	creator.Avatar = avatar.String
	return creator, nil
}

// Create inserts a new creator record. The unique constraint on email is the
// final arbiter for concurrent registrations; a violation surfaces as
// ErrDuplicateEmail regardless of any earlier existence check.
func (s *SQLCreatorStore) Create(creator models.Creator) (models.Creator, error) {
	stmt, err := s.db.Prepare("INSERT INTO creators(id, name, email, password_hash, avatar) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Creator{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(creator.ID, creator.Name, creator.Email, creator.PasswordHash, creator.Avatar)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Creator{}, ErrDuplicateEmail
		}
		return models.Creator{}, err
	}

	return s.GetByID(creator.ID)
}

// Delete removes a creator from the database.
func (s *SQLCreatorStore) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM creators WHERE id = ?", id)
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
