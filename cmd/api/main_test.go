package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homeservices/directory/pkg/logger"
)

func TestRun_InvalidConfigFailsBeforeServing(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)
	t.Setenv("STORAGE_BACKEND", "cassandra")

	err := run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cassandra")
	require.NotPanics(t, func() { logger.Get() }, "run must initialise the logger main reports through")
}

func TestRun_UnknownSweepScheduleFails(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("REMINDER_SWEEP_SCHEDULE", "every tuesday")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, run(ctx))
}
