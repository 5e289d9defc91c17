// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/magnitude"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magnitude.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeYAML(t, `
engine:
  distance: ngram
  scale: 2.5
  ngram_size: 4
logging:
  level: debug
  format: json
`)
	t.Setenv("MAGNITUDE_ENGINE_SCALE", "0.5")
	t.Setenv("MAGNITUDE_ENGINE_CACHE_CAPACITY", "16")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ngram", cfg.Engine.Distance)
	assert.Equal(t, 0.5, cfg.Engine.Scale, "environment wins over the file")
	assert.Equal(t, 4, cfg.Engine.NGramSize)
	assert.Equal(t, 16, cfg.Engine.CacheCapacity)
	assert.Equal(t, magnitude.DefaultThreshold, cfg.Engine.Threshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: load file")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeYAML(t, `
engine:
  distance: hamming
  scale: 0
  threshold: 1.5
`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	msg := err.Error()
	assert.Contains(t, msg, "Config.Engine.Distance must be one of")
	assert.Contains(t, msg, "Config.Engine.Scale must be greater than 0")
	assert.Contains(t, msg, "Config.Engine.Threshold must be less than or equal to 1")
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Distance = " Cosine "
	cfg.Logging.Level = "INFO"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "cosine", cfg.Engine.Distance)
	assert.Equal(t, "info", cfg.Logging.Level)

	cfg.Engine.CacheCapacity = -1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "engine.cache_capacity", envKey("MAGNITUDE_ENGINE_CACHE_CAPACITY"))
	assert.Equal(t, "logging.level", envKey("MAGNITUDE_LOGGING_LEVEL"))
	assert.Equal(t, "engine.ngram_size", envKey("MAGNITUDE_ENGINE_NGRAM_SIZE"))
}

type countingCache struct{ hits, misses int }

func (c *countingCache) CacheHit()  { c.hits++ }
func (c *countingCache) CacheMiss() { c.misses++ }

func TestProvider(t *testing.T) {
	cfg := DefaultConfig()
	obs := &countingCache{}
	p, err := cfg.Provider(obs)
	require.NoError(t, err)
	edit, ok := p.(*distance.Edit)
	require.True(t, ok)
	edit.Distance("kitten", "sitting")
	edit.Distance("sitting", "kitten")
	assert.Equal(t, 1, obs.misses)
	assert.Equal(t, 1, obs.hits)

	cfg.Engine.Distance = distance.NameNGram
	cfg.Engine.NGramSize = 2
	p, err = cfg.Provider(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.(distance.NGram).Size())

	cfg.Engine.Distance = distance.NameJaccard
	p, err = cfg.Provider(nil)
	require.NoError(t, err)
	assert.IsType(t, distance.Cosine{}, p)
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Scale = 2
	cfg.Engine.Threshold = 0.5
	p, err := cfg.Provider(nil)
	require.NoError(t, err)

	eng, err := magnitude.New(cfg.EngineOptions(p, zerolog.Nop(), nil)...)
	require.NoError(t, err)
	assert.Equal(t, 2.0, eng.Scale())
	assert.Equal(t, 0.5, eng.Threshold())
	assert.Equal(t, magnitude.DefaultRegularization, eng.Regularization())
	assert.Same(t, p, eng.Distance())
}

func TestLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "json"
	var buf bytes.Buffer
	log, err := cfg.Logger(&buf)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Zero(t, buf.Len(), "default level is warn")
	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), `"message":"loud"`)
}
