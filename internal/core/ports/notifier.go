package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// Notifier publishes transient toasts to whoever is listening.
type Notifier interface {
	Publish(t domain.Toast) domain.Toast
}

// Connectivity exposes the client's online/offline signal.
type Connectivity interface {
	IsOnline() bool
}

// KeyedExecutor runs fn on the worker that owns key, so calls sharing a key
// execute one at a time in submission order.
type KeyedExecutor interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context)) error
}
