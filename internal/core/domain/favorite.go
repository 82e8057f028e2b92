package domain

import (
	"errors"
	"time"
)

// FavoriteState is the per-provider lifecycle of a favorite toggle as seen by
// the caller: idle -> loading -> (success | error) -> idle.
type FavoriteState string

const (
	FavoriteIdle    FavoriteState = "idle"
	FavoriteLoading FavoriteState = "loading"
	FavoriteSuccess FavoriteState = "success"
	FavoriteError   FavoriteState = "error"
)

const (
	FavoriteSuccessHold = 600 * time.Millisecond
	FavoriteErrorHold   = 3000 * time.Millisecond
)

// User-facing toggle messages.
const (
	MsgOffline          = "You are offline. Please check your connection."
	MsgFavoriteFailed   = "Failed to update favorites. Please try again."
	MsgUnexpected       = "An unexpected error occurred."
	MsgFavoriteAdded    = "Added to favorites"
	MsgFavoriteRemoved  = "Removed from favorites"
	MsgRemoveFailed     = "Failed to remove from favorites"
	MsgAddFailed        = "Failed to add to favorites"
	MsgOfflineBanner    = "You are offline — favorites will sync when online"
	MsgBackOnline       = "You are back online"
	MsgRetryActionLabel = "Retry"
)

var (
	ErrOffline          = errors.New("client is offline")
	ErrTransientFailure = errors.New("transient favorites failure")
)

// FavoriteStatus is the observable state of a provider's favorite control.
type FavoriteStatus struct {
	ProviderID string        `json:"providerId"`
	State      FavoriteState `json:"state"`
	IsFavorite bool          `json:"isFavorite"`
	LastError  string        `json:"lastError,omitempty"`
}

// ConnectivityStatus is the client's online signal as last reported.
type ConnectivityStatus struct {
	Online bool   `json:"online"`
	Banner string `json:"banner,omitempty"`
}
