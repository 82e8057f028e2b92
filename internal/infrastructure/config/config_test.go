package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, 300*time.Millisecond, cfg.Favorites.Delay)
	assert.Equal(t, 0.1, cfg.Favorites.FailureRate)
	assert.Equal(t, time.Second, cfg.Contact.Delay)
	assert.Equal(t, 8, cfg.Workers.Dispatcher)
	assert.Equal(t, "@every 1m", cfg.Workers.SweepSchedule)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORAGE_BACKEND":       "sqlite",
		"SQLITE_PATH":           "/tmp/x.db",
		"FAVORITE_DELAY":        "1s",
		"FAVORITE_FAILURE_RATE": "0",
		"ENV":                   "production",
		"CORS_ORIGINS":          "https://a.example,https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, time.Second, cfg.Favorites.Delay)
	assert.Zero(t, cfg.Favorites.FailureRate)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"STORAGE_BACKEND": "postgres"}))
	assert.Error(t, err)
}

func TestLoad_RejectsFailureRateOutOfRange(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"FAVORITE_FAILURE_RATE": "1.5"}))
	assert.Error(t, err)
}
