package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/core/state"
	"github.com/homeservices/directory/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Fake clock
// ---------------------------------------------------------------------------

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	slept  []time.Duration
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep returns at once, moving the clock forward by d without firing timers.
func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.slept = append(c.slept, d)
	return nil
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock and runs every timer that became due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type fixedRandom struct{ v float64 }

func (r *fixedRandom) Float64() float64 { return r.v }

type switchConnectivity struct{ online bool }

func (c *switchConnectivity) IsOnline() bool { return c.online }

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []domain.Toast
}

func (n *recordingNotifier) Publish(t domain.Toast) domain.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	t.ID = "toast-" + string(rune('a'+len(n.toasts)))
	n.toasts = append(n.toasts, t)
	return t
}

func (n *recordingNotifier) last() domain.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return domain.Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.toasts)
}

// inlineExecutor runs jobs on the calling goroutine. before, when set, runs
// ahead of every job.
type inlineExecutor struct {
	before func()
}

func (e *inlineExecutor) Do(ctx context.Context, _ string, fn func(ctx context.Context)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.before != nil {
		e.before()
	}
	fn(ctx)
	return nil
}

func newSeededStore() *state.Store {
	return state.New(memory.NewSnapshotStore(), zerolog.Nop())
}
