package ports

import (
	"context"
	"time"
)

// Clock abstracts time so simulated delays and auto-clearing timers can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// RandomSource yields floats in [0, 1).
type RandomSource interface {
	Float64() float64
}
