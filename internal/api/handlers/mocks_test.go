package handlers

import (
	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/services"
)

// fakeCreatorService returns canned results so handler tests can exercise
// the wire shapes without real stores or hashing.
type fakeCreatorService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
	creator       models.Creator
	getErr        error
}

func (f *fakeCreatorService) Register(name, email, password string) (string, error) {
	return f.registerToken, f.registerErr
}

func (f *fakeCreatorService) Login(email, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeCreatorService) GetByID(id string) (models.Creator, error) {
	return f.creator, f.getErr
}

// fakeProfileService returns canned results for profile handler tests.
type fakeProfileService struct {
	profile    models.Profile
	profiles   []models.Profile
	getErr     error
	upsertErr  error
	listErr    error
	deleteErr  error
	deletedFor string
}

func (f *fakeProfileService) GetByCreatorID(creatorID string) (models.Profile, error) {
	return f.profile, f.getErr
}

func (f *fakeProfileService) List() ([]models.Profile, error) {
	return f.profiles, f.listErr
}

func (f *fakeProfileService) Upsert(creatorID string, input services.ProfileInput) (models.Profile, error) {
	return f.profile, f.upsertErr
}

func (f *fakeProfileService) DeleteAccount(creatorID string) error {
	f.deletedFor = creatorID
	return f.deleteErr
}
