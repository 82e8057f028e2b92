// Package clock provides the wall-clock and random-source implementations
// used outside of tests.
package clock

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/homeservices/directory/internal/core/ports"
)

// System is the real clock.
type System struct{}

var _ ports.Clock = System{}

func (System) Now() time.Time { return time.Now() }

func (System) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (System) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}

// Random draws from the process-wide math/rand/v2 source.
type Random struct{}

var _ ports.RandomSource = Random{}

func (Random) Float64() float64 { return rand.Float64() }
