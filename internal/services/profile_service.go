package services

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

// ProfileServiceProvider defines the interface for profile services.
type ProfileServiceProvider interface {
	GetByCreatorID(creatorID string) (models.Profile, error)
	List() ([]models.Profile, error)
	Upsert(creatorID string, input ProfileInput) (models.Profile, error)
	DeleteAccount(creatorID string) error
}

// ProfileService provides business logic for creator profiles.
type ProfileService struct {
	profiles store.ProfileStore
	creators store.CreatorStore
	events   EventServiceProvider
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles store.ProfileStore, creators store.CreatorStore, events EventServiceProvider) *ProfileService {
	return &ProfileService{profiles: profiles, creators: creators, events: events}
}

// ProfileInput is the payload for creating or updating a profile. Skills is
// a comma-separated list on the wire.
type ProfileInput struct {
	Company   string `json:"company"`
	Website   string `json:"website"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	Status    string `json:"status"`
	Skills    string `json:"skills"`
	Youtube   string `json:"youtube"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// Validate enforces the profile rules: status and skills are required.
func (in ProfileInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Status, validation.Required.Error("Status is required")),
		validation.Field(&in.Skills, validation.Required.Error("Skills is required")),
	)
}

// GetByCreatorID retrieves the profile belonging to a creator.
func (s *ProfileService) GetByCreatorID(creatorID string) (models.Profile, error) {
	return s.profiles.GetByCreatorID(creatorID)
}

// List retrieves all profiles.
func (s *ProfileService) List() ([]models.Profile, error) {
	return s.profiles.List()
}

// Upsert creates the creator's profile or updates the existing one.
func (s *ProfileService) Upsert(creatorID string, input ProfileInput) (models.Profile, error) {
	if err := asValidationError(input.Validate()); err != nil {
		return models.Profile{}, err
	}

	skills := make([]string, 0)
	for _, skill := range strings.Split(input.Skills, ",") {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	profile, err := s.profiles.Upsert(models.Profile{
		ID:        uuid.New().String(),
		CreatorID: creatorID,
		Company:   input.Company,
		Website:   input.Website,
		Location:  input.Location,
		Bio:       input.Bio,
		Status:    input.Status,
		Skills:    skills,
		Social: models.SocialLinks{
			Youtube:   input.Youtube,
			Facebook:  input.Facebook,
			Twitter:   input.Twitter,
			Instagram: input.Instagram,
			LinkedIn:  input.LinkedIn,
		},
	})
	if err != nil {
		return models.Profile{}, err
	}

	if err := s.events.Publish("profile.updated", profile.CreatorName+" updated their profile", &creatorID); err != nil {
		log.Warn().Err(err).Str("creator_id", creatorID).Msg("Failed to publish profile event")
	}

	return profile, nil
}

// DeleteAccount removes the creator's profile and the creator record itself.
func (s *ProfileService) DeleteAccount(creatorID string) error {
	if err := s.profiles.Delete(creatorID); err != nil {
		return err
	}
	if err := s.creators.Delete(creatorID); err != nil {
		return err
	}

	if err := s.events.Publish("creator.deleted", "A creator left the platform", nil); err != nil {
		log.Warn().Err(err).Str("creator_id", creatorID).Msg("Failed to publish deletion event")
	}
	return nil
}
