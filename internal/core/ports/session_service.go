package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// SessionService is the mock login. It never checks credentials.
type SessionService interface {
	Login(ctx context.Context, name, email string) (string, *domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	// Authenticate validates a session token against the active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
