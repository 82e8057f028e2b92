package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/homeservices/directory/internal/core/domain"
)

// SnapshotStore keeps each collection blob as a plain Redis string with no
// expiry. Key format: <prefix><storage key>
type SnapshotStore struct {
	client *redis.Client
	prefix string
}

// NewSnapshotStore wraps an already connected client.
func NewSnapshotStore(client *redis.Client, prefix string) *SnapshotStore {
	return &SnapshotStore{client: client, prefix: prefix}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("redis load %s: %w", key, err)
	}
	return data, nil
}

func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("redis save %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SnapshotStore) Close(context.Context) error {
	return s.client.Close()
}

func (s *SnapshotStore) key(k string) string {
	return s.prefix + k
}
