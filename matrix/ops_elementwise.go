// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise map kernel used to derive one matrix from another
//     (e.g. similarity Z[i,j] = exp(-t·D[i,j]) from a distance matrix).
//   - Keep loops deterministic and cache-friendly with a Dense fast-path.
//
// Determinism & Performance:
//   - Fixed loop order i→j; Dense fast-path walks the flat buffer once.
//   - One output allocation; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

const opApply = "Apply"

// ApplyFunc maps the value at (i, j) to a new value.
type ApplyFunc func(i, j int, v float64) float64

// Apply returns a new Dense with out[i,j] = fn(i, j, m[i,j]).
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrNaNInf when fn produces a non-finite value.
//
// Complexity: Time O(r*c), Space O(r*c).
func Apply(m Matrix, fn ApplyFunc) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	var (
		i, j int
		v, w float64
	)
	src, fast := m.(*Dense)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if fast {
				v = src.data[base+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opApply, err)
			}
			w = fn(i, j, v)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, matrixErrorf(opApply, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			out.data[base+j] = w
		}
	}

	return out, nil
}
