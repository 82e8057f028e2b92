package domain

import "errors"

// Snapshot keys. Each holds one JSON blob of the full collection.
const (
	KeyProviders = "homeservices_providers"
	KeyReminders = "homeservices_reminders"
	KeyUser      = "homeservices_user"
	KeyFavorites = "homeservices_favorites"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")
