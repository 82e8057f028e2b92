package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
	StorageSQLite = "sqlite"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string        `env:"JWT_SECRET,  default=dev-secret-change-me"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	MapEmbedURL string   `env:"MAP_EMBED_URL"`

	Storage   StorageConfig
	Favorites FavoritesConfig
	Contact   ContactConfig
	Workers   WorkersConfig
}

type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=memory"`

	Mongo  MongoConfig
	Redis  RedisConfig
	SQLite SQLiteConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=homeservices"`
	Collection string `env:"MONGO_COLLECTION, default=snapshots"`
}

type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR,       default=localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB,         default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX, default=homeservices:"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=homeservices.db"`
}

type FavoritesConfig struct {
	Delay       time.Duration `env:"FAVORITE_DELAY,        default=300ms"`
	FailureRate float64       `env:"FAVORITE_FAILURE_RATE, default=0.1"`
}

type ContactConfig struct {
	Delay time.Duration `env:"CONTACT_DELAY, default=1s"`
}

type WorkersConfig struct {
	Dispatcher    int    `env:"DISPATCHER_WORKERS,      default=8"`
	SweepSchedule string `env:"REMINDER_SWEEP_SCHEDULE, default=@every 1m"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads a .env file when present and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageRedis, StorageMongo, StorageSQLite:
	default:
		return nil, fmt.Errorf("load config: unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
	if cfg.Favorites.FailureRate < 0 || cfg.Favorites.FailureRate > 1 {
		return nil, fmt.Errorf("load config: FAVORITE_FAILURE_RATE must be within [0, 1], got %v", cfg.Favorites.FailureRate)
	}
	return &cfg, nil
}
