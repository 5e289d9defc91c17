// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug().Int("items", 3).Msg("computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "computed", entry["message"])
	assert.EqualValues(t, 3, entry["items"])
	assert.NotContains(t, entry, "time")
}

func TestNew_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Timestamp: true, Output: &buf})
	require.NoError(t, err)
	log.Info().Msg("x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "time")
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "CONSOLE", Output: &buf})
	require.NoError(t, err)

	log.Info().Str("distance", "edit").Msg("engine ready")
	out := buf.String()
	assert.Contains(t, out, "engine ready")
	assert.Contains(t, out, "distance=edit")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.ErrorIs(t, err, ErrInvalidLevel)

	_, err = New(Config{Format: "xml"})
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Timestamp)
	assert.NotNil(t, cfg.Output)
}
