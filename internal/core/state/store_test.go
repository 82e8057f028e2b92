package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeservices/directory/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub snapshot store
// ---------------------------------------------------------------------------

type stubSnapshots struct {
	data    map[string][]byte
	saveErr error
	saves   int
}

func newStubSnapshots() *stubSnapshots {
	return &stubSnapshots{data: make(map[string][]byte)}
}

func (s *stubSnapshots) Load(_ context.Context, key string) ([]byte, error) {
	b, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return b, nil
}

func (s *stubSnapshots) Save(_ context.Context, key string, data []byte) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = data
	return nil
}

func (s *stubSnapshots) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *stubSnapshots) Ping(context.Context) error  { return nil }
func (s *stubSnapshots) Close(context.Context) error { return nil }

func decode[T any](t *testing.T, snaps *stubSnapshots, key string) T {
	t.Helper()
	var v T
	require.Contains(t, snaps.data, key)
	require.NoError(t, json.Unmarshal(snaps.data[key], &v))
	return v
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestStore_NewStartsFromSeed(t *testing.T) {
	s := New(newStubSnapshots(), zerolog.Nop())
	s.Load(context.Background())

	assert.Len(t, s.Providers(), 20)
	assert.Empty(t, s.Reminders())
	assert.Empty(t, s.Favorites())
	assert.Nil(t, s.User())
}

func TestStore_LoadRestoresSnapshots(t *testing.T) {
	snaps := newStubSnapshots()
	snaps.data[domain.KeyProviders] = []byte(`[{"id":"x","name":"Only","serviceType":"Plumber","rating":3}]`)
	snaps.data[domain.KeyFavorites] = []byte(`["x"]`)
	snaps.data[domain.KeyUser] = []byte(`{"id":"u1","name":"Ayesha","email":"a@example.com"}`)

	s := New(snaps, zerolog.Nop())
	s.Load(context.Background())

	require.Len(t, s.Providers(), 1)
	assert.Equal(t, "Only", s.Providers()[0].Name)
	assert.True(t, s.IsFavorite("x"))
	require.NotNil(t, s.User())
	assert.Equal(t, "u1", s.User().ID)
}

func TestStore_LoadIgnoresCorruptSnapshot(t *testing.T) {
	snaps := newStubSnapshots()
	snaps.data[domain.KeyProviders] = []byte(`{not json`)

	s := New(snaps, zerolog.Nop())
	s.Load(context.Background())

	assert.Len(t, s.Providers(), 20)
}

// ---------------------------------------------------------------------------
// Providers and reviews
// ---------------------------------------------------------------------------

func TestStore_AddProviderPersists(t *testing.T) {
	snaps := newStubSnapshots()
	s := New(snaps, zerolog.Nop())

	s.AddProvider(context.Background(), domain.Provider{ID: "new", Name: "New", ServiceType: domain.CategoryCleaning, Rating: 5})

	assert.Len(t, s.Providers(), 21)
	saved := decode[[]domain.Provider](t, snaps, domain.KeyProviders)
	assert.Len(t, saved, 21)
	assert.Equal(t, "new", saved[20].ID)
}

func TestStore_AddReviewRecomputesRating(t *testing.T) {
	s := New(newStubSnapshots(), zerolog.Nop())

	// Provider "1" carries reviews rated 5 and 4.
	p, err := s.AddReview(context.Background(), "1", domain.Review{ID: "r", Name: "N", Rating: 5, Comment: "c"})
	require.NoError(t, err)

	assert.Equal(t, 4.7, p.Rating)
	assert.Len(t, p.Reviews, 3)

	stored, ok := s.Provider("1")
	require.True(t, ok)
	assert.Equal(t, 4.7, stored.Rating)
}

func TestStore_AddReviewUnknownProvider(t *testing.T) {
	s := New(newStubSnapshots(), zerolog.Nop())

	_, err := s.AddReview(context.Background(), "missing", domain.Review{Rating: 5})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestStore_ReadersReturnCopies(t *testing.T) {
	s := New(newStubSnapshots(), zerolog.Nop())

	p, _ := s.Provider("1")
	p.Reviews[0].Rating = 1
	p.Name = "changed"

	again, _ := s.Provider("1")
	assert.Equal(t, "Ali Raza", again.Name)
	assert.Equal(t, 5, again.Reviews[0].Rating)
}

// ---------------------------------------------------------------------------
// Reminders
// ---------------------------------------------------------------------------

func TestStore_DeleteReminderRemovesOnlyThatID(t *testing.T) {
	snaps := newStubSnapshots()
	s := New(snaps, zerolog.Nop())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		s.AddReminder(ctx, domain.Reminder{ID: id, ServiceType: domain.CategoryPlumber, Date: "2030-01-01", Time: "10:00"})
	}

	assert.True(t, s.DeleteReminder(ctx, "b"))
	assert.False(t, s.DeleteReminder(ctx, "b"))

	ids := []string{}
	for _, r := range s.Reminders() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
	assert.Len(t, decode[[]domain.Reminder](t, snaps, domain.KeyReminders), 2)
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestStore_SetUserNilDeletesSnapshot(t *testing.T) {
	snaps := newStubSnapshots()
	s := New(snaps, zerolog.Nop())
	ctx := context.Background()

	s.SetUser(ctx, &domain.User{ID: "u1", Name: "Ayesha", Email: "a@example.com"})
	require.Contains(t, snaps.data, domain.KeyUser)

	s.SetUser(ctx, nil)
	assert.Nil(t, s.User())
	assert.NotContains(t, snaps.data, domain.KeyUser)
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

func TestStore_ToggleFavoriteTwiceRestoresMembership(t *testing.T) {
	snaps := newStubSnapshots()
	s := New(snaps, zerolog.Nop())
	ctx := context.Background()

	now, err := s.ToggleFavorite(ctx, "3")
	require.NoError(t, err)
	assert.True(t, now)
	assert.Equal(t, []string{"3"}, decode[[]string](t, snaps, domain.KeyFavorites))

	now, err = s.ToggleFavorite(ctx, "3")
	require.NoError(t, err)
	assert.False(t, now)
	assert.Empty(t, s.Favorites())
}

func TestStore_PersistFailureIsNotSurfaced(t *testing.T) {
	snaps := newStubSnapshots()
	snaps.saveErr = errors.New("quota exceeded")
	s := New(snaps, zerolog.Nop())

	now, err := s.ToggleFavorite(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, now)
	assert.True(t, s.IsFavorite("3"))
	assert.Equal(t, 1, snaps.saves)
}
