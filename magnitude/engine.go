// SPDX-License-Identifier: MIT

package magnitude

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/matrix"
)

// Operation tags for error wrapping.
const (
	opNew          = "New"
	opCompute      = "Compute"
	opIncremental  = "ComputeIncremental"
	opContribution = "DiversityContribution"
	opSelect       = "SelectDiverseSubset"
)

// Engine computes magnitudes with a fixed configuration.
type Engine struct {
	dist           distance.Provider
	scale          float64
	regularization float64
	threshold      float64
	log            zerolog.Logger
	observer       Observer
}

// New validates the options and returns an Engine.
//
// Defaults: edit distance, scale 1, regularization 1e-10, threshold 0.8.
//
// Errors:
//   - ErrInvalidScale, ErrInvalidRegularization, ErrInvalidThreshold.
//   - ErrNilDistance for WithDistance(nil).
//   - distance.ErrUnknownDistance for an unknown WithDistanceName.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if math.IsNaN(o.scale) || math.IsInf(o.scale, 0) || o.scale <= 0 {
		return nil, fmt.Errorf("%s: %g: %w", opNew, o.scale, ErrInvalidScale)
	}
	if math.IsNaN(o.regularization) || math.IsInf(o.regularization, 0) || o.regularization < 0 {
		return nil, fmt.Errorf("%s: %g: %w", opNew, o.regularization, ErrInvalidRegularization)
	}
	if math.IsNaN(o.threshold) || o.threshold < 0 || o.threshold > 1 {
		return nil, fmt.Errorf("%s: %g: %w", opNew, o.threshold, ErrInvalidThreshold)
	}

	dist := o.dist
	switch {
	case o.distSet && dist == nil:
		return nil, fmt.Errorf("%s: %w", opNew, ErrNilDistance)
	case dist == nil && o.distName != "":
		p, err := distance.ByName(o.distName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
		dist = p
	case dist == nil:
		p, err := distance.NewEdit()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
		dist = p
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}

	return &Engine{
		dist:           dist,
		scale:          o.scale,
		regularization: o.regularization,
		threshold:      o.threshold,
		log:            o.logger,
		observer:       o.observer,
	}, nil
}

// Distance returns the configured provider.
func (e *Engine) Distance() distance.Provider { return e.dist }

// Scale returns t in Z = exp(-t·D).
func (e *Engine) Scale() float64 { return e.scale }

// Regularization returns the diagonal ridge.
func (e *Engine) Regularization() float64 { return e.regularization }

// Threshold returns the redundancy threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Compute returns the magnitude of items. With details set, the similarity
// matrix is included in the result.
//
// Base cases: no items → 0; one item → 1 with weights [1]. Duplicates are
// allowed.
//
// Errors: ErrInvalidItem (wrapped with the item index) for non-UTF-8 input.
func (e *Engine) Compute(items []string, details bool) (*Result, error) {
	if err := validateItems(items); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	start := time.Now()

	var res *Result
	switch len(items) {
	case 0:
		e.observer.ObserveCompute(OpCompute, 0, time.Since(start), false)
		res = emptyResult()
	case 1:
		e.observer.ObserveCompute(OpCompute, 1, time.Since(start), false)
		res = singleResult(details)
	default:
		d, err := distance.Matrix(items, e.dist)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
		z, err := matrix.Apply(d, e.similarity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
		res = e.finish(OpCompute, z, details, start)
	}
	res.origin = e
	res.items = append([]string(nil), items...)

	return res, nil
}

// ComputeIncremental returns the magnitude of priorItems + [newItem].
//
// The result always equals Compute(append(priorItems, newItem)) within
// floating-point tolerance and always carries its similarity matrix, so
// calls can be chained. The prior's similarity matrix is reused, and only
// the len(priorItems) new distances are evaluated, when prior was returned
// by this same engine for exactly priorItems (same strings, same order) with
// details. Any other prior, including one decoded from JSON, one from an
// engine with a different scale or distance, or one whose matrix was edited
// by the caller, triggers a recompute from scratch.
//
// Errors: ErrNilResult, ErrInvalidItem.
func (e *Engine) ComputeIncremental(prior *Result, newItem string, priorItems []string) (*Result, error) {
	if prior == nil {
		return nil, fmt.Errorf("%s: %w", opIncremental, ErrNilResult)
	}
	if err := validateItems(priorItems); err != nil {
		return nil, fmt.Errorf("%s: %w", opIncremental, err)
	}
	if !utf8.ValidString(newItem) {
		return nil, fmt.Errorf("%s: new item: %w", opIncremental, ErrInvalidItem)
	}

	items := make([]string, len(priorItems), len(priorItems)+1)
	copy(items, priorItems)
	items = append(items, newItem)

	if !e.reusable(prior, priorItems) {
		e.log.Debug().Int("items", len(items)).Msg("prior result not reusable, recomputing")
		return e.Compute(items, true)
	}

	start := time.Now()
	row, err := distance.Row(newItem, priorItems, e.dist)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIncremental, err)
	}
	z, err := e.extend(prior.Similarity, row)
	if errors.Is(err, matrix.ErrAsymmetry) || errors.Is(err, matrix.ErrNaNInf) {
		e.log.Debug().Err(err).Msg("prior similarity matrix altered, recomputing")
		return e.Compute(items, true)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIncremental, err)
	}

	res := e.finish(OpIncremental, z, true, start)
	res.origin = e
	res.items = items

	return res, nil
}

// DiversityContribution returns the magnitude gained by adding item to
// existing. The first item always contributes exactly 1.
func (e *Engine) DiversityContribution(item string, existing []string) (float64, error) {
	if !utf8.ValidString(item) {
		return 0, fmt.Errorf("%s: %w", opContribution, ErrInvalidItem)
	}
	if len(existing) == 0 {
		return 1, nil
	}
	base, err := e.Compute(existing, true)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opContribution, err)
	}
	ext, err := e.ComputeIncremental(base, item, existing)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opContribution, err)
	}

	return ext.Value - base.Value, nil
}

// similarity maps a distance to exp(-t·d), forcing an exact unit diagonal.
func (e *Engine) similarity(i, j int, d float64) float64 {
	if i == j {
		return 1
	}

	return math.Exp(-e.scale * d)
}

// extend borders the prior similarity matrix with one new row and column.
// A prior matrix that is no longer symmetric or finite is rejected.
func (e *Engine) extend(prior [][]float64, row []float64) (*matrix.Dense, error) {
	n := len(prior) + 1
	rows := make([][]float64, n)
	rows[n-1] = make([]float64, n)
	for i := 0; i < n-1; i++ {
		rows[i] = make([]float64, n)
		copy(rows[i], prior[i])
		s := e.similarity(i, n-1, row[i])
		rows[i][n-1] = s
		rows[n-1][i] = s
	}
	rows[n-1][n-1] = 1

	z, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(z, matrix.WithEpsilon(0)); err != nil {
		return nil, err
	}

	return z, nil
}

// finish solves for the weights and assembles the Result.
func (e *Engine) finish(op string, z *matrix.Dense, details bool, start time.Time) *Result {
	n := z.Rows()
	weights, fallback := e.weights(z)

	value := 0.0
	for _, w := range weights {
		value += w
	}
	score := clampUnit(value / float64(n))
	rows := z.ToRows()
	if value < 1-boundsTolerance || value > float64(n)+boundsTolerance {
		e.log.Debug().
			Float64("magnitude", value).
			Int("items", n).
			Msg("magnitude outside [1, n], similarity matrix is not positive definite")
	}

	res := &Result{
		Value:           value,
		Weights:         weights,
		DiversityScore:  score,
		RedundancyPairs: redundancyPairs(rows, e.threshold),
		Interpretation:  interpret(value, n, score),
		Size:            n,
		Fallback:        fallback,
	}
	if details {
		res.Similarity = rows
	}
	e.observer.ObserveCompute(op, n, time.Since(start), fallback)

	return res
}

// weights solves (Z + λI)·w = 1. Any failure, singular or otherwise,
// replaces the whole vector with 1/n.
func (e *Engine) weights(z *matrix.Dense) ([]float64, bool) {
	n := z.Rows()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	w, err := matrix.Solve(z, ones,
		matrix.WithRegularization(e.regularization),
		matrix.WithPivotTolerance(PivotTolerance),
	)
	if err == nil {
		if e.log.GetLevel() <= zerolog.DebugLevel {
			e.logResidual(z, w)
		}

		return w, false
	}

	ev := e.log.Warn()
	if errors.Is(err, matrix.ErrSingular) {
		ev = e.log.Debug()
	}
	ev.Err(err).Int("items", n).Msg("similarity solve failed, using uniform weights")

	for i := range ones {
		ones[i] = 1 / float64(n)
	}

	return ones, true
}

// logResidual reports max|Z·w - 1| for a successful solve.
func (e *Engine) logResidual(z *matrix.Dense, w []float64) {
	y, err := matrix.MatVec(z, w)
	if err != nil {
		e.log.Debug().Err(err).Msg("residual check failed")
		return
	}
	worst := 0.0
	for _, v := range y {
		worst = math.Max(worst, math.Abs(v-1))
	}
	e.log.Debug().Int("items", len(w)).Float64("residual", worst).Msg("similarity solve residual")
}

// reusable reports whether prior was produced by e for exactly items and
// still carries a matching similarity matrix.
func (e *Engine) reusable(prior *Result, items []string) bool {
	n := len(items)
	if n == 0 || prior.origin != e || prior.Size != n || len(prior.Similarity) != n {
		return false
	}
	if !slices.Equal(prior.items, items) {
		return false
	}
	for _, row := range prior.Similarity {
		if len(row) != n {
			return false
		}
	}

	return true
}

func validateItems(items []string) error {
	for i, it := range items {
		if !utf8.ValidString(it) {
			return fmt.Errorf("item %d: %w", i, ErrInvalidItem)
		}
	}

	return nil
}

func emptyResult() *Result {
	return &Result{
		Weights:         []float64{},
		RedundancyPairs: []RedundancyPair{},
		Interpretation:  msgEmpty,
	}
}

func singleResult(details bool) *Result {
	res := &Result{
		Value:           1,
		Weights:         []float64{1},
		DiversityScore:  1,
		RedundancyPairs: []RedundancyPair{},
		Interpretation:  msgSingle,
		Size:            1,
	}
	if details {
		res.Similarity = [][]float64{{1}}
	}

	return res
}
