package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/services"
)

// EventHandler handles HTTP requests for the activity feed history.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to get recent activity events.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	events, err := h.service.Recent(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve events")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
