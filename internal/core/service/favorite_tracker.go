package service

import (
	"sync"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

type favoriteEntry struct {
	state   domain.FavoriteState
	pending int
	gen     uint64
	lastErr string
	timer   ports.Timer

	// outcome of the latest toggle that finished while others were pending
	finished    bool
	finishedErr string
}

// FavoriteTracker holds the button state of each provider's favorite control.
// A provider is loading while any toggle is pending; once the last one
// finishes it shows success or error and falls back to idle after a hold.
type FavoriteTracker struct {
	clock ports.Clock

	mu      sync.Mutex
	entries map[string]*favoriteEntry
}

func NewFavoriteTracker(clock ports.Clock) *FavoriteTracker {
	return &FavoriteTracker{clock: clock, entries: make(map[string]*favoriteEntry)}
}

// Begin marks a toggle for providerID as pending.
func (t *FavoriteTracker) Begin(providerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(providerID)
	e.pending++
	e.gen++
	e.state = domain.FavoriteLoading
	e.lastErr = ""
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Finish records the outcome of one pending toggle. errMsg is empty on
// success.
func (t *FavoriteTracker) Finish(providerID, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(providerID)
	if e.pending > 0 {
		e.pending--
	}
	if e.pending > 0 {
		e.finished = true
		e.finishedErr = errMsg
		return
	}
	t.settle(providerID, e, errMsg)
}

// settle shows the outcome and schedules the return to idle. Callers hold t.mu.
func (t *FavoriteTracker) settle(providerID string, e *favoriteEntry, errMsg string) {
	e.finished = false
	e.finishedErr = ""

	hold := domain.FavoriteSuccessHold
	e.state = domain.FavoriteSuccess
	e.lastErr = ""
	if errMsg != "" {
		hold = domain.FavoriteErrorHold
		e.state = domain.FavoriteError
		e.lastErr = errMsg
	}

	e.gen++
	gen := e.gen
	e.timer = t.clock.AfterFunc(hold, func() { t.clear(providerID, gen) })
}

// Abort drops a pending toggle that never produced an outcome. When it was
// the last one pending, the latest finished toggle's outcome is shown
// instead, or the provider goes back to idle if none finished.
func (t *FavoriteTracker) Abort(providerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(providerID)
	if e.pending > 0 {
		e.pending--
	}
	if e.pending > 0 {
		return
	}
	if e.finished {
		t.settle(providerID, e, e.finishedErr)
		return
	}
	delete(t.entries, providerID)
}

// State returns the current state and, in the error state, its message.
func (t *FavoriteTracker) State(providerID string) (domain.FavoriteState, string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[providerID]
	if !ok {
		return domain.FavoriteIdle, ""
	}
	return e.state, e.lastErr
}

func (t *FavoriteTracker) clear(providerID string, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[providerID]; ok && e.gen == gen {
		delete(t.entries, providerID)
	}
}

// entry returns the entry for providerID, creating an idle one. Callers hold t.mu.
func (t *FavoriteTracker) entry(providerID string) *favoriteEntry {
	e, ok := t.entries[providerID]
	if !ok {
		e = &favoriteEntry{state: domain.FavoriteIdle}
		t.entries[providerID] = e
	}
	return e
}
