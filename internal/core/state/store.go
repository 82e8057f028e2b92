// Package state holds the single application state container: providers,
// reminders, the active user and favorites. Each collection is mirrored to a
// snapshot store as one JSON blob, rewritten in full on every change.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

// Store implements ports.StateStore.
type Store struct {
	mu        sync.RWMutex
	providers []domain.Provider
	reminders []domain.Reminder
	user      *domain.User
	favorites []string

	snapshots ports.SnapshotStore
	log       zerolog.Logger
}

var _ ports.StateStore = (*Store)(nil)

// New returns a store seeded with the default catalog and no reminders, user
// or favorites. Call Load to restore persisted snapshots.
func New(snapshots ports.SnapshotStore, log zerolog.Logger) *Store {
	return &Store{
		providers: seedProviders(),
		reminders: []domain.Reminder{},
		favorites: []string{},
		snapshots: snapshots,
		log:       log,
	}
}

// Load restores every collection from its snapshot. A missing or unreadable
// snapshot leaves that collection at its default; it is never fatal.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var providers []domain.Provider
	if s.restore(ctx, domain.KeyProviders, &providers) {
		s.providers = providers
	}
	var reminders []domain.Reminder
	if s.restore(ctx, domain.KeyReminders, &reminders) {
		s.reminders = reminders
	}
	var user domain.User
	if s.restore(ctx, domain.KeyUser, &user) {
		s.user = &user
	}
	var favorites []string
	if s.restore(ctx, domain.KeyFavorites, &favorites) {
		s.favorites = favorites
	}

	s.log.Info().
		Int("providers", len(s.providers)).
		Int("reminders", len(s.reminders)).
		Int("favorites", len(s.favorites)).
		Bool("user", s.user != nil).
		Msg("state restored")
}

func (s *Store) restore(ctx context.Context, key string, dst any) bool {
	data, err := s.snapshots.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("snapshot load failed, using defaults")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot unreadable, using defaults")
		return false
	}
	return true
}

// persist writes v under key. Failures are logged and counted only. Callers
// hold the write lock so snapshots of one collection land in mutation order.
func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.snapshots.Save(ctx, key, data)
	}
	if err != nil {
		metrics.SnapshotWriteErrorsTotal.WithLabelValues(key).Inc()
		s.log.Error().Err(err).Str("key", key).Msg("failed to save snapshot")
	}
}

// ── Providers ─────────────────────────────────────────────────────────────────

func (s *Store) Providers() []domain.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Provider, len(s.providers))
	for i, p := range s.providers {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Provider(id string) (domain.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Provider{}, false
}

func (s *Store) AddProvider(ctx context.Context, p domain.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.providers = append(s.providers, p.Clone())
	s.persist(ctx, domain.KeyProviders, s.providers)
}

// AddReview appends r to the provider and recomputes its rating.
func (s *Store) AddReview(ctx context.Context, providerID string, r domain.Review) (domain.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.providers, func(p domain.Provider) bool { return p.ID == providerID })
	if idx < 0 {
		return domain.Provider{}, fmt.Errorf("add review: %w", domain.ErrProviderNotFound)
	}

	updated := s.providers[idx].Clone()
	updated.AddReview(r)
	s.providers[idx] = updated
	s.persist(ctx, domain.KeyProviders, s.providers)

	return updated.Clone(), nil
}

// ── Reminders ─────────────────────────────────────────────────────────────────

func (s *Store) Reminders() []domain.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reminders)
}

func (s *Store) AddReminder(ctx context.Context, r domain.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = append(s.reminders, r)
	s.persist(ctx, domain.KeyReminders, s.reminders)
}

// DeleteReminder removes the reminder with the given id and reports whether
// one existed. Other reminders are untouched.
func (s *Store) DeleteReminder(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(s.reminders)
	s.reminders = kept
	s.persist(ctx, domain.KeyReminders, s.reminders)
	return removed
}

// ── User ──────────────────────────────────────────────────────────────────────

func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the active user; nil logs out and deletes the snapshot.
func (s *Store) SetUser(ctx context.Context, u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.user = nil
		if err := s.snapshots.Delete(ctx, domain.KeyUser); err != nil {
			metrics.SnapshotWriteErrorsTotal.WithLabelValues(domain.KeyUser).Inc()
			s.log.Error().Err(err).Str("key", domain.KeyUser).Msg("failed to delete snapshot")
		}
		return
	}

	cp := *u
	s.user = &cp
	s.persist(ctx, domain.KeyUser, s.user)
}

// ── Favorites ─────────────────────────────────────────────────────────────────

func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

func (s *Store) IsFavorite(providerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, providerID)
}

// ToggleFavorite flips membership and returns the new state.
func (s *Store) ToggleFavorite(ctx context.Context, providerID string) (bool, error) {
	if providerID == "" {
		return false, fmt.Errorf("toggle favorite: %w", domain.ErrProviderNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var nowFavorite bool
	if idx := slices.Index(s.favorites, providerID); idx >= 0 {
		s.favorites = slices.Delete(slices.Clone(s.favorites), idx, idx+1)
	} else {
		s.favorites = append(s.favorites, providerID)
		nowFavorite = true
	}
	s.persist(ctx, domain.KeyFavorites, s.favorites)
	return nowFavorite, nil
}
