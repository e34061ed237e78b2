package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/store"
	ws "github.com/creatorhub/creatorhub-be/internal/websocket"
)

// EventServiceProvider defines the interface for activity event services.
type EventServiceProvider interface {
	Publish(eventType, message string, creatorID *string) error
	Recent(limit int) ([]models.Event, error)
	Prune(olderThan time.Duration) (int64, error)
}

// EventService persists activity events and broadcasts them to the live feed.
type EventService struct {
	store store.EventStore
	hub   *ws.Hub
}

// NewEventService creates a new EventService. The hub may be nil when no
// live feed is attached.
func NewEventService(store store.EventStore, hub *ws.Hub) *EventService {
	return &EventService{store: store, hub: hub}
}

// Publish records a new event and pushes it to connected feed clients.
func (s *EventService) Publish(eventType, message string, creatorID *string) error {
	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Message:   message,
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Insert(event); err != nil {
		return err
	}

	if s.hub != nil {
		if payload, err := json.Marshal(ws.Message{Action: "event", Payload: event}); err == nil {
			s.hub.Broadcast <- payload
		}
	}
	return nil
}

// Recent retrieves the most recent events.
func (s *EventService) Recent(limit int) ([]models.Event, error) {
	return s.store.Recent(limit)
}

// Prune removes events older than the given age.
func (s *EventService) Prune(olderThan time.Duration) (int64, error) {
	return s.store.DeleteBefore(time.Now().Add(-olderThan))
}
