package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// FavoriteResult mirrors the toggle contract: success, or failure with a
// user-facing message and the toast that was raised for it.
type FavoriteResult struct {
	Success    bool          `json:"success"`
	IsFavorite bool          `json:"isFavorite"`
	Error      string        `json:"error,omitempty"`
	Toast      *domain.Toast `json:"toast,omitempty"`
	// Cause is the sentinel behind a failure (domain.ErrOffline, domain.ErrTransientFailure, ...).
	Cause error `json:"-"`
}

// FavoriteService toggles favorite membership through the simulated network.
type FavoriteService interface {
	Toggle(ctx context.Context, providerID string) (*FavoriteResult, error)
	Status(ctx context.Context, providerID string) (*domain.FavoriteStatus, error)
	List(ctx context.Context) []domain.Provider
}
