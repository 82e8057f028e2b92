package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// StateStore is the single container of application state. Readers get
// copies; every write persists the affected collection.
type StateStore interface {
	Providers() []domain.Provider
	Provider(id string) (domain.Provider, bool)
	AddProvider(ctx context.Context, p domain.Provider)
	AddReview(ctx context.Context, providerID string, r domain.Review) (domain.Provider, error)

	Reminders() []domain.Reminder
	AddReminder(ctx context.Context, r domain.Reminder)
	DeleteReminder(ctx context.Context, id string) bool

	User() *domain.User
	SetUser(ctx context.Context, u *domain.User)

	Favorites() []string
	IsFavorite(providerID string) bool
	ToggleFavorite(ctx context.Context, providerID string) (bool, error)
}
