package service

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

const (
	DefaultFavoriteDelay       = 300 * time.Millisecond
	DefaultFavoriteFailureRate = 0.1
)

// FavoriteOptions tunes the simulated network of the favorites endpoint.
type FavoriteOptions struct {
	Delay       time.Duration
	FailureRate float64
}

// FavoriteService implements ports.FavoriteService. Each toggle waits a fixed
// delay, then fails when offline or at random, and otherwise flips
// membership. Toggles of the same provider run one after another.
type FavoriteService struct {
	store    ports.StateStore
	exec     ports.KeyedExecutor
	online   ports.Connectivity
	notifier ports.Notifier
	clock    ports.Clock
	random   ports.RandomSource
	tracker  *FavoriteTracker
	opts     FavoriteOptions
	log      zerolog.Logger
}

var _ ports.FavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(
	store ports.StateStore,
	exec ports.KeyedExecutor,
	online ports.Connectivity,
	notifier ports.Notifier,
	clock ports.Clock,
	random ports.RandomSource,
	opts FavoriteOptions,
	log zerolog.Logger,
) *FavoriteService {
	if opts.Delay < 0 {
		opts.Delay = DefaultFavoriteDelay
	}
	if opts.FailureRate < 0 || opts.FailureRate > 1 {
		opts.FailureRate = DefaultFavoriteFailureRate
	}
	return &FavoriteService{
		store:    store,
		exec:     exec,
		online:   online,
		notifier: notifier,
		clock:    clock,
		random:   random,
		tracker:  NewFavoriteTracker(clock),
		opts:     opts,
		log:      log,
	}
}

// Toggle runs one favorite toggle to completion. Failures are reported in the
// result, not as an error; the error return is for unknown providers and
// abandoned requests.
func (s *FavoriteService) Toggle(ctx context.Context, providerID string) (*ports.FavoriteResult, error) {
	if _, ok := s.store.Provider(providerID); !ok {
		return nil, domain.ErrProviderNotFound
	}

	start := s.clock.Now()
	s.tracker.Begin(providerID)

	var (
		res         ports.FavoriteResult
		wasFavorite bool
		ran         bool
	)
	err := s.exec.Do(ctx, providerID, func(ctx context.Context) {
		ran = true
		wasFavorite = s.store.IsFavorite(providerID)
		res = s.attempt(ctx, providerID)
	})
	switch {
	case err != nil:
	case !ran:
		err = cmp.Or(ctx.Err(), context.Canceled)
	case errors.Is(res.Cause, context.Canceled), errors.Is(res.Cause, context.DeadlineExceeded):
		err = res.Cause
	}
	if err != nil {
		s.tracker.Abort(providerID)
		return nil, err
	}

	s.tracker.Finish(providerID, res.Error)
	metrics.FavoriteToggleDuration.Observe(s.clock.Now().Sub(start).Seconds())

	if res.Success {
		msg := domain.MsgFavoriteAdded
		result := "added"
		if !res.IsFavorite {
			msg = domain.MsgFavoriteRemoved
			result = "removed"
		}
		metrics.FavoriteTogglesTotal.WithLabelValues(result).Inc()
		t := s.notifier.Publish(domain.SuccessToast(msg))
		res.Toast = &t
		return &res, nil
	}

	metrics.FavoriteTogglesTotal.WithLabelValues(failureLabel(res.Cause)).Inc()
	s.log.Warn().Err(res.Cause).Str("provider_id", providerID).Msg("favorite toggle failed")

	msg := res.Error
	if wasFavorite {
		msg = domain.MsgRemoveFailed
	}
	toast := domain.ErrorToast(msg)
	toast.Action = &domain.ToastAction{
		Label:  domain.MsgRetryActionLabel,
		Method: http.MethodPost,
		Href:   TogglePath(providerID),
	}
	t := s.notifier.Publish(toast)
	res.Toast = &t
	return &res, nil
}

func (s *FavoriteService) attempt(ctx context.Context, providerID string) ports.FavoriteResult {
	if err := s.clock.Sleep(ctx, s.opts.Delay); err != nil {
		return ports.FavoriteResult{Error: domain.MsgUnexpected, Cause: err, IsFavorite: s.store.IsFavorite(providerID)}
	}

	if !s.online.IsOnline() {
		return ports.FavoriteResult{Error: domain.MsgOffline, Cause: domain.ErrOffline, IsFavorite: s.store.IsFavorite(providerID)}
	}
	if s.random.Float64() < s.opts.FailureRate {
		return ports.FavoriteResult{Error: domain.MsgFavoriteFailed, Cause: domain.ErrTransientFailure, IsFavorite: s.store.IsFavorite(providerID)}
	}

	now, err := s.store.ToggleFavorite(ctx, providerID)
	if err != nil {
		return ports.FavoriteResult{Error: domain.MsgUnexpected, Cause: err, IsFavorite: s.store.IsFavorite(providerID)}
	}
	return ports.FavoriteResult{Success: true, IsFavorite: now}
}

func (s *FavoriteService) Status(_ context.Context, providerID string) (*domain.FavoriteStatus, error) {
	if _, ok := s.store.Provider(providerID); !ok {
		return nil, domain.ErrProviderNotFound
	}
	state, lastErr := s.tracker.State(providerID)
	return &domain.FavoriteStatus{
		ProviderID: providerID,
		State:      state,
		IsFavorite: s.store.IsFavorite(providerID),
		LastError:  lastErr,
	}, nil
}

// List returns the favorite providers in catalog order.
func (s *FavoriteService) List(context.Context) []domain.Provider {
	return favoriteProviders(s.store)
}

// TogglePath is the API route that toggles providerID.
func TogglePath(providerID string) string {
	return "/v1/favorites/" + providerID + "/toggle"
}

func favoriteProviders(store ports.StateStore) []domain.Provider {
	favs := make(map[string]struct{})
	for _, id := range store.Favorites() {
		favs[id] = struct{}{}
	}
	out := make([]domain.Provider, 0, len(favs))
	for _, p := range store.Providers() {
		if _, ok := favs[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func failureLabel(cause error) string {
	switch {
	case errors.Is(cause, domain.ErrOffline):
		return "offline"
	case errors.Is(cause, domain.ErrTransientFailure):
		return "failed"
	default:
		return "error"
	}
}
