// SPDX-License-Identifier: MIT

package magnitude

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/magnitude/distance"
)

// Defaults (single source of truth).
const (
	// DefaultScale multiplies distances before exponentiation.
	DefaultScale = 1.0

	// DefaultRegularization is the ridge added to the diagonal of Z.
	DefaultRegularization = 1e-10

	// DefaultThreshold flags pairs with Z[i][j] above it as redundant.
	DefaultThreshold = 0.8

	// PivotTolerance is the smallest pivot accepted before falling back to
	// uniform weights.
	PivotTolerance = 1e-12

	// boundsTolerance is the slack allowed around 1 <= magnitude <= n
	// before the engine logs an out-of-range magnitude.
	boundsTolerance = 1e-6
)

// Option configures New.
type Option func(*Options)

// Options stores the resolved configuration. Fields are validated by New.
type Options struct {
	dist     distance.Provider
	distSet  bool
	distName string

	scale          float64
	regularization float64
	threshold      float64

	logger   zerolog.Logger
	observer Observer
}

// WithDistance sets a caller-supplied provider. It takes precedence over
// WithDistanceName.
func WithDistance(p distance.Provider) Option {
	return func(o *Options) {
		o.dist = p
		o.distSet = true
	}
}

// WithDistanceName selects a built-in provider: edit, cosine, jaccard or ngram.
func WithDistanceName(name string) Option {
	return func(o *Options) { o.distName = name }
}

// WithScale sets t in Z = exp(-t·D).
func WithScale(t float64) Option {
	return func(o *Options) { o.scale = t }
}

// WithRegularization sets the diagonal ridge used before elimination.
func WithRegularization(r float64) Option {
	return func(o *Options) { o.regularization = r }
}

// WithThreshold sets the redundancy similarity threshold.
func WithThreshold(th float64) Option {
	return func(o *Options) { o.threshold = th }
}

// WithLogger attaches a zerolog logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithObserver attaches an Observer (e.g. a metrics collector).
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

func defaultOptions() Options {
	return Options{
		scale:          DefaultScale,
		regularization: DefaultRegularization,
		threshold:      DefaultThreshold,
		logger:         zerolog.Nop(),
		observer:       nopObserver{},
	}
}
