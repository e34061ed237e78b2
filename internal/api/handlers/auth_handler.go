package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/auth"
	"github.com/creatorhub/creatorhub-be/internal/services"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

// AuthHandler handles login and current-creator lookups.
type AuthHandler struct {
	service services.CreatorServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.CreatorServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles credential verification and token issuance. Unknown emails
// and wrong passwords produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeErrors(w, http.StatusBadRequest, vErr.Messages()...)
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed login attempt")
			writeErrors(w, http.StatusBadRequest, services.ErrInvalidCredentials.Error())
		default:
			log.Error().Err(err).Msg("Login failed")
			writeServerError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetMe returns the creator resolved from the request token, without the
// password hash.
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := auth.CreatorIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve creator ID from context")
		writeServerError(w)
		return
	}

	creator, err := h.service.GetByID(creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("creator_id", creatorID).Msg("Creator from token not found")
			http.Error(w, "Creator not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("creator_id", creatorID).Msg("Failed to load creator")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, creator)
}
