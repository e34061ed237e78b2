package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

func newTestProfileService() (*ProfileService, *fakeCreatorStore, *fakeProfileStore, *recordingEventService) {
	creators := newFakeCreatorStore()
	profiles := newFakeProfileStore()
	events := &recordingEventService{}
	return NewProfileService(profiles, creators, events), creators, profiles, events
}

func TestProfileUpsertSplitsSkills(t *testing.T) {
	svc, _, _, events := newTestProfileService()

	profile, err := svc.Upsert("creator-1", ProfileInput{
		Status: "Streamer",
		Skills: "editing, sound design ,  lighting",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"editing", "sound design", "lighting"}, profile.Skills)
	assert.Contains(t, events.types(), "profile.updated")
}

func TestProfileUpsertValidation(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	_, err := svc.Upsert("creator-1", ProfileInput{Skills: "editing"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages(), "Status is required")

	_, err = svc.Upsert("creator-1", ProfileInput{Status: "Streamer"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages(), "Skills is required")
}

func TestProfileUpsertUpdatesExisting(t *testing.T) {
	svc, _, profiles, _ := newTestProfileService()

	first, err := svc.Upsert("creator-1", ProfileInput{Status: "Streamer", Skills: "editing"})
	require.NoError(t, err)

	second, err := svc.Upsert("creator-1", ProfileInput{Status: "Podcaster", Skills: "audio"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must keep the original profile ID")
	stored, err := profiles.GetByCreatorID("creator-1")
	require.NoError(t, err)
	assert.Equal(t, "Podcaster", stored.Status)
}

func TestProfileGetMissing(t *testing.T) {
	svc, _, _, _ := newTestProfileService()

	_, err := svc.GetByCreatorID("nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAccountRemovesProfileAndCreator(t *testing.T) {
	svc, creators, _, events := newTestProfileService()

	created, err := creators.Create(models.Creator{ID: "creator-1", Name: "A", Email: "a@x.com", PasswordHash: "x"})
	require.NoError(t, err)
	_, err = svc.Upsert(created.ID, ProfileInput{Status: "Streamer", Skills: "editing"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(created.ID))

	_, err = svc.GetByCreatorID(created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = creators.GetByID(created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, events.types(), "creator.deleted")
}
