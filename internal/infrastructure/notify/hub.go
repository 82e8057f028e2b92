// Package notify is the in-process toast bus. Published toasts are kept until
// they expire and fanned out to live subscribers.
package notify

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

const subscriberBuffer = 16

// Hub implements ports.Notifier.
type Hub struct {
	clock ports.Clock
	log   zerolog.Logger

	mu     sync.Mutex
	toasts []domain.Toast
	subs   map[uint64]chan domain.Toast
	nextID uint64
}

var _ ports.Notifier = (*Hub)(nil)

func NewHub(clock ports.Clock, log zerolog.Logger) *Hub {
	return &Hub{
		clock: clock,
		log:   log,
		subs:  make(map[uint64]chan domain.Toast),
	}
}

// Publish stamps t with an id and expiry, records it and delivers it to every
// subscriber. Slow subscribers miss toasts rather than block the publisher.
func (h *Hub) Publish(t domain.Toast) domain.Toast {
	t.ID = uuid.NewString()
	t.CreatedAt = h.clock.Now().UTC()
	t.ExpiresAt = t.CreatedAt.Add(t.Lifetime())

	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune()
	h.toasts = append(h.toasts, t)
	for id, ch := range h.subs {
		select {
		case ch <- t:
		default:
			h.log.Warn().Uint64("subscriber", id).Str("toast_id", t.ID).Msg("toast dropped for slow subscriber")
		}
	}

	metrics.ToastsPublishedTotal.WithLabelValues(string(t.Type)).Inc()
	return t
}

// Active returns the toasts that have not expired yet, oldest first.
func (h *Hub) Active() []domain.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune()
	return slices.Clone(h.toasts)
}

// Dismiss removes a toast before it expires.
func (h *Hub) Dismiss(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.toasts)
	h.toasts = slices.DeleteFunc(h.toasts, func(t domain.Toast) bool { return t.ID == id })
	return len(h.toasts) != n
}

// Subscribe returns the toasts active right now, a channel receiving every
// toast published after that snapshot, and a function that unsubscribes and
// closes the channel. A toast is either in the snapshot or on the channel,
// never both.
func (h *Hub) Subscribe() ([]domain.Toast, <-chan domain.Toast, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune()
	active := slices.Clone(h.toasts)

	id := h.nextID
	h.nextID++
	ch := make(chan domain.Toast, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	return active, ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// prune drops expired toasts. Callers hold h.mu.
func (h *Hub) prune() {
	now := h.clock.Now()
	h.toasts = slices.DeleteFunc(h.toasts, func(t domain.Toast) bool { return !now.Before(t.ExpiresAt) })
}
