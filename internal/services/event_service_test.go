package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventServicePublishAndRecent(t *testing.T) {
	eventStore := &fakeEventStore{}
	svc := NewEventService(eventStore, nil)

	creatorID := "creator-1"
	require.NoError(t, svc.Publish("creator.registered", "A joined the platform", &creatorID))
	require.NoError(t, svc.Publish("profile.updated", "A updated their profile", &creatorID))

	recent, err := svc.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "profile.updated", recent[0].Type)
	assert.NotEmpty(t, recent[0].ID)
}

func TestEventServicePrune(t *testing.T) {
	eventStore := &fakeEventStore{}
	svc := NewEventService(eventStore, nil)

	require.NoError(t, svc.Publish("creator.registered", "old event", nil))
	// Backdate the stored event past the retention window.
	eventStore.events[0].CreatedAt = time.Now().Add(-48 * time.Hour)

	removed, err := svc.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	recent, err := svc.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
