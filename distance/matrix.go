// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/magnitude/matrix"
)

// Matrix evaluates p once per unordered pair (i<j) and mirrors the value,
// returning the n×n distance matrix with a zero diagonal.
//
// Negative or non-finite distances from caller-supplied providers are
// rejected with ErrInvalidDistance.
//
// Complexity: n(n-1)/2 provider calls, O(n²) memory.
func Matrix(items []string, p Provider) (*matrix.Dense, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	n := len(items)
	if n == 0 {
		return nil, ErrNoItems
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = p.Distance(items[i], items[j])
			if !validDistance(v) {
				return nil, fmt.Errorf("Matrix(%d,%d)=%g: %w", i, j, v, ErrInvalidDistance)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
			if err = d.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Row evaluates p between item and every element of others, in order.
// Used to extend an existing matrix by one item.
func Row(item string, others []string, p Provider) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	out := make([]float64, len(others))
	for i, o := range others {
		v := p.Distance(o, item)
		if !validDistance(v) {
			return nil, fmt.Errorf("Row(%d)=%g: %w", i, v, ErrInvalidDistance)
		}
		out[i] = v
	}

	return out, nil
}

func validDistance(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
