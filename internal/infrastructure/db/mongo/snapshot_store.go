package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homeservices/directory/internal/core/domain"
)

const defaultCollection = "snapshots"

// SnapshotStore keeps one document per storage key in a single collection.
type SnapshotStore struct {
	col *mongo.Collection
}

type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewSnapshotStore uses the named collection, or "snapshots" when empty.
func NewSnapshotStore(db *mongo.Database, collection string) *SnapshotStore {
	if collection == "" {
		collection = defaultCollection
	}
	return &SnapshotStore{col: db.Collection(collection)}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc snapshotDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("mongo load %s: %w", key, err)
	}
	return doc.Data, nil
}

// Save replaces the whole document for key, creating it on first write.
func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := snapshotDoc{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo save %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}

func (s *SnapshotStore) Close(ctx context.Context) error {
	return s.col.Database().Client().Disconnect(ctx)
}
