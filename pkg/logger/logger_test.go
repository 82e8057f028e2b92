package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesJSONWithServiceAndComponent(t *testing.T) {
	t.Cleanup(Reset)
	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf, Service: "homeservices"})

	log := Component("favorites")
	log.Debug().Str("provider_id", "1").Msg("toggled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "homeservices", entry["service"])
	assert.Equal(t, "favorites", entry["component"])
	assert.Equal(t, "1", entry["provider_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	t.Cleanup(Reset)
	var first, second bytes.Buffer
	Init(Options{Level: "error", Output: &first})
	l := Init(Options{Level: "debug", Output: &second})

	l.Info().Msg("dropped")
	assert.Zero(t, first.Len())
	assert.Zero(t, second.Len())
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	assert.Panics(t, func() { Get() })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
