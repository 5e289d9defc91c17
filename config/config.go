// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/logging"
	"github.com/katalvlaran/magnitude/magnitude"
)

// EnvPrefix marks the environment variables read by Load.
const EnvPrefix = "MAGNITUDE_"

// ErrInvalidConfig wraps every field validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Engine  EngineConfig  `koanf:"engine"`
	Logging LoggingConfig `koanf:"logging"`
}

// EngineConfig mirrors the magnitude.Engine options plus the distance
// provider's own knobs.
type EngineConfig struct {
	Distance       string  `koanf:"distance" validate:"oneof=edit cosine jaccard ngram"`
	Scale          float64 `koanf:"scale" validate:"gt=0"`
	Regularization float64 `koanf:"regularization" validate:"gte=0"`
	Threshold      float64 `koanf:"threshold" validate:"gte=0,lte=1"`
	CacheCapacity  int     `koanf:"cache_capacity" validate:"gte=0"`
	NGramSize      int     `koanf:"ngram_size" validate:"gte=1"`
}

// LoggingConfig selects level and format of the command's logger.
type LoggingConfig struct {
	Level     string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format    string `koanf:"format" validate:"oneof=json console"`
	Timestamp bool   `koanf:"timestamp"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			Distance:       distance.NameEdit,
			Scale:          magnitude.DefaultScale,
			Regularization: magnitude.DefaultRegularization,
			Threshold:      magnitude.DefaultThreshold,
			CacheCapacity:  distance.DefaultCacheCapacity,
			NGramSize:      distance.DefaultNGramSize,
		},
		Logging: LoggingConfig{
			Level:     "warn",
			Format:    logging.FormatConsole,
			Timestamp: false,
		},
	}
}

// Load merges defaults, the YAML file at path (skipped when empty) and the
// environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey turns MAGNITUDE_ENGINE_CACHE_CAPACITY into engine.cache_capacity.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	return strings.Replace(key, "_", ".", 1)
}

// Validate checks field constraints. Failures are reported together and
// wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	c.Engine.Distance = strings.ToLower(strings.TrimSpace(c.Engine.Distance))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fieldMessage(fe)
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Provider builds the configured distance provider. obs, when non-nil, is
// attached to the edit cache.
func (c *Config) Provider(obs distance.CacheObserver) (distance.Provider, error) {
	switch c.Engine.Distance {
	case distance.NameEdit:
		opts := []distance.EditOption{distance.WithCacheCapacity(c.Engine.CacheCapacity)}
		if obs != nil {
			opts = append(opts, distance.WithCacheObserver(obs))
		}
		return distance.NewEdit(opts...)
	case distance.NameNGram:
		return distance.NewNGram(c.Engine.NGramSize)
	default:
		return distance.ByName(c.Engine.Distance)
	}
}

// EngineOptions translates the engine settings into magnitude options.
func (c *Config) EngineOptions(p distance.Provider, log zerolog.Logger, obs magnitude.Observer) []magnitude.Option {
	opts := []magnitude.Option{
		magnitude.WithDistance(p),
		magnitude.WithScale(c.Engine.Scale),
		magnitude.WithRegularization(c.Engine.Regularization),
		magnitude.WithThreshold(c.Engine.Threshold),
		magnitude.WithLogger(log),
	}
	if obs != nil {
		opts = append(opts, magnitude.WithObserver(obs))
	}

	return opts
}

// Logger builds the configured logger writing to out.
func (c *Config) Logger(out io.Writer) (zerolog.Logger, error) {
	return logging.New(logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Timestamp: c.Logging.Timestamp,
		Output:    out,
	})
}
