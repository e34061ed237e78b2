package services

import (
	"sync"
	"time"

	"github.com/creatorhub/creatorhub-be/internal/models"
	"github.com/creatorhub/creatorhub-be/internal/store"
)

// fakeCreatorStore is an in-memory CreatorStore. When failCreateDuplicate is
// set, Create reports a unique-constraint violation regardless of contents,
// simulating a registration that lost a race after passing the pre-check.
type fakeCreatorStore struct {
	mu                  sync.Mutex
	byID                map[string]models.Creator
	failCreateDuplicate bool
}

func newFakeCreatorStore() *fakeCreatorStore {
	return &fakeCreatorStore{byID: make(map[string]models.Creator)}
}

func (f *fakeCreatorStore) GetByID(id string) (models.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	creator, ok := f.byID[id]
	if !ok {
		return models.Creator{}, store.ErrNotFound
	}
	creator.PasswordHash = ""
	return creator, nil
}

func (f *fakeCreatorStore) GetByEmail(email string) (models.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, creator := range f.byID {
		if creator.Email == email {
			return creator, nil
		}
	}
	return models.Creator{}, store.ErrNotFound
}

func (f *fakeCreatorStore) Create(creator models.Creator) (models.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateDuplicate {
		return models.Creator{}, store.ErrDuplicateEmail
	}
	for _, existing := range f.byID {
		if existing.Email == creator.Email {
			return models.Creator{}, store.ErrDuplicateEmail
		}
	}
	creator.CreatedAt = time.Now().UTC()
	f.byID[creator.ID] = creator
	public := creator
	public.PasswordHash = ""
	return public, nil
}

func (f *fakeCreatorStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

// fakeProfileStore is an in-memory ProfileStore keyed by creator ID.
type fakeProfileStore struct {
	mu        sync.Mutex
	byCreator map[string]models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{byCreator: make(map[string]models.Profile)}
}

func (f *fakeProfileStore) GetByCreatorID(creatorID string) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.byCreator[creatorID]
	if !ok {
		return models.Profile{}, store.ErrNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) List() ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profiles := make([]models.Profile, 0, len(f.byCreator))
	for _, profile := range f.byCreator {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (f *fakeProfileStore) Upsert(profile models.Profile) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.byCreator[profile.CreatorID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = time.Now().UTC()
	}
	profile.UpdatedAt = time.Now().UTC()
	f.byCreator[profile.CreatorID] = profile
	return profile, nil
}

func (f *fakeProfileStore) Delete(creatorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byCreator, creatorID)
	return nil
}

// fakeEventStore is an in-memory EventStore in insertion order.
type fakeEventStore struct {
	mu     sync.Mutex
	events []models.Event
}

func (f *fakeEventStore) Insert(event models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) Recent(limit int) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recent := make([]models.Event, 0, limit)
	for i := len(f.events) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, f.events[i])
	}
	return recent, nil
}

func (f *fakeEventStore) DeleteBefore(cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.events[:0]
	var removed int64
	for _, event := range f.events {
		if event.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, event)
	}
	f.events = kept
	return removed, nil
}

// recordingEventService records Publish calls instead of persisting them.
type recordingEventService struct {
	mu        sync.Mutex
	published []models.Event
}

func (r *recordingEventService) Publish(eventType, message string, creatorID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, models.Event{Type: eventType, Message: message, CreatorID: creatorID})
	return nil
}

func (r *recordingEventService) Recent(limit int) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.published) {
		limit = len(r.published)
	}
	return r.published[:limit], nil
}

func (r *recordingEventService) Prune(olderThan time.Duration) (int64, error) {
	return 0, nil
}

func (r *recordingEventService) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.published))
	for _, event := range r.published {
		types = append(types, event.Type)
	}
	return types
}
