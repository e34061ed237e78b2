package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/auth"
	"github.com/creatorhub/creatorhub-be/internal/services"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

// ProfileHandler handles HTTP requests for creator profiles.
type ProfileHandler struct {
	service services.ProfileServiceProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileServiceProvider) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe returns the authenticated creator's own profile.
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := auth.CreatorIDFromContext(r.Context())
	if !ok {
		writeServerError(w)
		return
	}

	profile, err := h.service.GetByCreatorID(creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "There is no profile for this creator"})
			return
		}
		log.Error().Err(err).Str("creator_id", creatorID).Msg("Failed to load profile")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Upsert creates or updates the authenticated creator's profile.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := auth.CreatorIDFromContext(r.Context())
	if !ok {
		writeServerError(w)
		return
	}

	var input services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.Upsert(creatorID, input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			writeErrors(w, http.StatusBadRequest, vErr.Messages()...)
			return
		}
		log.Error().Err(err).Str("creator_id", creatorID).Msg("Failed to upsert profile")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// List returns all profiles with creator name and avatar.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list profiles")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// GetByCreatorID returns the profile of the creator in the URL.
func (h *ProfileHandler) GetByCreatorID(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	profile, err := h.service.GetByCreatorID(creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Profile not found"})
			return
		}
		log.Error().Err(err).Str("creator_id", creatorID).Msg("Failed to load profile")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteAccount removes the authenticated creator's profile and account.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := auth.CreatorIDFromContext(r.Context())
	if !ok {
		writeServerError(w)
		return
	}

	if err := h.service.DeleteAccount(creatorID); err != nil {
		log.Error().Err(err).Str("creator_id", creatorID).Msg("Failed to delete account")
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Creator deleted"})
}
