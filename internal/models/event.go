package models

import "time"

// Event represents a loggable action on the platform activity feed.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // e.g., "creator.registered", "profile.updated"
	Message   string    `json:"message"`
	CreatorID *string   `json:"creatorId,omitempty"` // Nullable for system-wide events
	CreatedAt time.Time `json:"createdAt"`
}
