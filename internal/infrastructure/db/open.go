// Package db selects and opens the snapshot store backend.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/infrastructure/config"
	"github.com/homeservices/directory/internal/infrastructure/db/memory"
	"github.com/homeservices/directory/internal/infrastructure/db/mongo"
	"github.com/homeservices/directory/internal/infrastructure/db/redis"
	"github.com/homeservices/directory/internal/infrastructure/db/sqlite"
)

// Open connects to the configured backend. The returned store owns the
// connection; release it with Close.
func Open(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (ports.SnapshotStore, error) {
	switch cfg.Backend {
	case config.StorageMemory, "":
		log.Warn().Msg("using in-memory snapshot store; state is lost on restart")
		return memory.NewSnapshotStore(), nil

	case config.StorageRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("snapshot store: redis")
		return redis.NewSnapshotStore(client, cfg.Redis.KeyPrefix), nil

	case config.StorageMongo:
		database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("snapshot store: mongo")
		return mongo.NewSnapshotStore(database, cfg.Mongo.Collection), nil

	case config.StorageSQLite:
		conn, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("snapshot store: sqlite")
		return sqlite.NewSnapshotStore(conn), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
