// Package memory is a process-local snapshot store, used by default in
// development and by tests.
package memory

import (
	"context"
	"sync"

	"github.com/homeservices/directory/internal/core/domain"
)

// SnapshotStore keeps blobs in a map. Data is lost on restart.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[string][]byte)}
}

func (s *SnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *SnapshotStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}

func (s *SnapshotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *SnapshotStore) Ping(context.Context) error  { return nil }
func (s *SnapshotStore) Close(context.Context) error { return nil }
