// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultRegularization is the diagonal shift added before elimination.
	// Zero means the matrix is solved as given.
	DefaultRegularization = 0.0

	// DefaultPivotTolerance is the smallest |pivot| accepted after row exchange.
	DefaultPivotTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid        = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRegularizationInvalid = "matrix: WithRegularization: shift must be finite, non-negative"
	panicPivotTolInvalid       = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	regularization float64 // >= 0; DefaultRegularization
	pivotTol       float64 // >= 0; DefaultPivotTolerance
}

// WithEpsilon sets the tolerance used by ValidateSymmetric.
// Panics if eps is NaN, Inf or negative.
func WithEpsilon(eps float64) Option {
	if !finiteNonNegative(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRegularization sets the shift added to every diagonal entry before
// elimination (Tikhonov-style ridge). Panics on NaN, Inf or negative values.
func WithRegularization(shift float64) Option {
	if !finiteNonNegative(shift) {
		panic(panicRegularizationInvalid)
	}

	return func(o *Options) { o.regularization = shift }
}

// WithPivotTolerance sets the minimal accepted |pivot|; smaller pivots make
// Solve return ErrSingular. Panics on NaN, Inf or negative values.
func WithPivotTolerance(tol float64) Option {
	if !finiteNonNegative(tol) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		regularization: DefaultRegularization,
		pivotTol:       DefaultPivotTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
