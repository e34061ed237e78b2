package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/services"
)

// CreatorHandler handles HTTP requests for creator registration.
type CreatorHandler struct {
	service services.CreatorServiceProvider
}

// NewCreatorHandler creates a new CreatorHandler.
func NewCreatorHandler(service services.CreatorServiceProvider) *CreatorHandler {
	return &CreatorHandler{service: service}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new creator registration and responds with a signed token.
func (h *CreatorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeErrors(w, http.StatusBadRequest, vErr.Messages()...)
		case errors.Is(err, services.ErrCreatorExists):
			writeErrors(w, http.StatusBadRequest, services.ErrCreatorExists.Error())
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register creator")
			writeServerError(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}
