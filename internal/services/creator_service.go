package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/auth"
	"github.com/creatorhub/creatorhub-be/internal/gravatar"
	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

// CreatorServiceProvider defines the interface for creator account services.
type CreatorServiceProvider interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	GetByID(id string) (models.Creator, error)
}

// CreatorService provides registration, login and account lookup.
type CreatorService struct {
	creators store.CreatorStore
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	events   EventServiceProvider
}

// NewCreatorService creates a new CreatorService.
func NewCreatorService(creators store.CreatorStore, hasher *auth.Hasher, tokens *auth.TokenManager, events EventServiceProvider) *CreatorService {
	return &CreatorService{creators: creators, hasher: hasher, tokens: tokens, events: events}
}

// RegisterInput is the validated payload for Register.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Validate enforces the registration rules: name present, email well-formed,
// password at least 6 characters.
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error("Name is required")),
		validation.Field(&in.Email,
			validation.Required.Error("Please include a valid email"),
			is.Email.Error("Please include a valid email")),
		validation.Field(&in.Password,
			validation.Required.Error("Please enter a password with 6 or more characters"),
			validation.Length(6, 0).Error("Please enter a password with 6 or more characters")),
	)
}

// LoginInput is the validated payload for Login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate enforces the login rules: email well-formed, password present.
func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("Please include a valid email"),
			is.Email.Error("Please include a valid email")),
		validation.Field(&in.Password,
			validation.Required.Error("Password is required")),
	)
}

// Register creates a new creator account and returns a signed token for it.
// The pre-check on email existence can race with a concurrent registration;
// the store's unique constraint is authoritative and its violation is reported
// as ErrCreatorExists just like a pre-check hit.
func (s *CreatorService) Register(name, email, password string) (string, error) {
	if err := asValidationError((RegisterInput{Name: name, Email: email, Password: password}).Validate()); err != nil {
		return "", err
	}

	_, err := s.creators.GetByEmail(email)
	if err == nil {
		return "", ErrCreatorExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	creator, err := s.creators.Create(models.Creator{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       gravatar.URL(email),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrCreatorExists
		}
		return "", fmt.Errorf("creating creator: %w", err)
	}

	token, err := s.tokens.Issue(creator.ID)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	if err := s.events.Publish("creator.registered", creator.Name+" joined the platform", &creator.ID); err != nil {
		log.Warn().Err(err).Str("creator_id", creator.ID).Msg("Failed to publish registration event")
	}

	return token, nil
}

// Login verifies a creator's credentials and returns a signed token. An
// unknown email and a wrong password fail with the identical error.
func (s *CreatorService) Login(email, password string) (string, error) {
	if err := asValidationError((LoginInput{Email: email, Password: password}).Validate()); err != nil {
		return "", err
	}

	creator, err := s.creators.GetByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up email: %w", err)
	}

	if !s.hasher.Verify(password, creator.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(creator.ID)
}

// GetByID retrieves a creator by ID. The password hash is never populated.
func (s *CreatorService) GetByID(id string) (models.Creator, error) {
	return s.creators.GetByID(id)
}
