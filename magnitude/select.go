// SPDX-License-Identifier: MIT

package magnitude

import (
	"fmt"
	"math"
	"time"
)

// SelectDiverseSubset greedily picks min(k, len(items)) items maximizing
// magnitude gain and returns them with the magnitude of the selection.
//
// Each round evaluates DiversityContribution of every remaining candidate
// against the current selection and keeps the strictly largest gain; ties
// go to the candidate that appears first in items. The output order is the
// pick order. Identical input order and distance always give the same
// selection. This is a greedy approximation; no optimality is claimed.
//
// k >= len(items) returns every item in input order. k <= 0 returns an
// empty selection with the empty-set result.
func (e *Engine) SelectDiverseSubset(items []string, k int) ([]string, *Result, error) {
	idx, res, err := e.SelectDiverseIndices(items, k)
	if err != nil {
		return nil, nil, err
	}
	selected := make([]string, len(idx))
	for i, j := range idx {
		selected[i] = items[j]
	}

	return selected, res, nil
}

// SelectDiverseIndices is SelectDiverseSubset returning positions in items
// instead of the strings themselves. Each position appears at most once.
func (e *Engine) SelectDiverseIndices(items []string, k int) ([]int, *Result, error) {
	if err := validateItems(items); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSelect, err)
	}
	start := time.Now()

	if k >= len(items) {
		res, err := e.Compute(items, false)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opSelect, err)
		}
		all := make([]int, len(items))
		for i := range all {
			all[i] = i
		}
		e.observer.ObserveSelection(len(items), len(all), time.Since(start))

		return all, res, nil
	}
	if k <= 0 {
		e.observer.ObserveSelection(len(items), 0, time.Since(start))
		return []int{}, emptyResult(), nil
	}

	remaining := make([]int, len(items))
	for i := range remaining {
		remaining[i] = i
	}
	picked := make([]int, 0, k)
	chosen := make([]string, 0, k)

	for step := 0; step < k; step++ {
		// The selection's own result is shared by every candidate this round.
		var base *Result
		if len(chosen) > 0 {
			var err error
			if base, err = e.Compute(chosen, true); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opSelect, err)
			}
		}

		bestPos, bestGain := -1, math.Inf(-1)
		for pos, idx := range remaining {
			gain := 1.0
			if base != nil {
				ext, err := e.ComputeIncremental(base, items[idx], chosen)
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", opSelect, err)
				}
				gain = ext.Value - base.Value
			}
			if gain > bestGain {
				bestPos, bestGain = pos, gain
			}
		}

		if bestPos < 0 {
			bestPos = 0
		}
		idx := remaining[bestPos]
		e.log.Debug().
			Int("step", step).
			Int("index", idx).
			Float64("gain", bestGain).
			Msg("selected diverse item")
		picked = append(picked, idx)
		chosen = append(chosen, items[idx])
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	res, err := e.Compute(chosen, false)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSelect, err)
	}
	e.observer.ObserveSelection(len(items), len(picked), time.Since(start))

	return picked, res, nil
}
