package ports

import "context"

// SnapshotStore is the key/blob persistence layer. Every collection is saved
// as one opaque JSON blob under a fixed key; there is no partial update.
type SnapshotStore interface {
	// Load returns domain.ErrSnapshotNotFound when the key has never been saved.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
