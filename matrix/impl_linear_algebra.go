// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the magnitude
// engine: a regularized, partially pivoted linear solve and a matrix-vector
// product used to verify residuals.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels with matrixErrorf.
//   - Inputs are read-only; every kernel works on its own copy.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and accumulation loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSolve  = "Solve"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns x such that (A + λI)·x = b, where λ is the regularization
// shift (WithRegularization, default 0).
// MAIN DESCRIPTION:
//   - Gaussian elimination with partial pivoting on an augmented copy [A+λI | b].
//
// Implementation:
//   - Stage 1: validate A square, len(b) == n.
//   - Stage 2: copy A into an n×(n+1) augmented buffer, add λ to the diagonal.
//   - Stage 3: for k=0..n-1 pick the row p>=k with max |a[p,k]|, swap it up;
//     fail with ErrSingular if |a[p,k]| < pivot tolerance; eliminate below.
//   - Stage 4: back-substitute; reject non-finite components with ErrSingular.
//
// Behavior highlights:
//   - The whole solve is abandoned on the first tiny pivot; no partial answer
//     is ever returned.
//   - Ties in pivot magnitude keep the upper row (deterministic).
//
// Inputs:
//   - a: square Matrix (n×n), not mutated.
//   - b: right-hand side of length n, not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Pass *Dense to hit the flat-buffer fast path when copying the input.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	// Stage 2: augmented buffer, row stride n+1.
	stride := n + 1
	aug := make([]float64, n*stride)
	var (
		i, j, k int
		v       float64
		err     error
	)
	src, fast := a.(*Dense)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if fast {
				v = src.data[i*n+j]
			} else if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSolve, err)
			}
			aug[i*stride+j] = v
		}
		aug[i*stride+i] += o.regularization
		aug[i*stride+n] = b[i]
	}

	// Stage 3: forward elimination with partial pivoting.
	var (
		p            int
		best, factor float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(aug[k*stride+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(aug[i*stride+k]); v > best {
				p, best = i, v
			}
		}
		if best < o.pivotTol || math.IsNaN(best) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("pivot %d (|%g| < %g): %w", k, best, o.pivotTol, ErrSingular))
		}
		if p != k {
			for j = k; j < stride; j++ {
				aug[k*stride+j], aug[p*stride+j] = aug[p*stride+j], aug[k*stride+j]
			}
		}
		for i = k + 1; i < n; i++ {
			factor = aug[i*stride+k] / aug[k*stride+k]
			if factor == 0 {
				continue
			}
			aug[i*stride+k] = 0
			for j = k + 1; j < stride; j++ {
				aug[i*stride+j] -= factor * aug[k*stride+j]
			}
		}
	}

	// Stage 4: back substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += aug[i*stride+j] * x[j]
		}
		x[i] = (aug[i*stride+n] - sum) / aug[i*stride+i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("component %d: %w", i, ErrSingular))
		}
	}

	return x, nil
}

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, r)
	var (
		i, j int
		v    float64
		err  error
	)
	d, fast := m.(*Dense)
	for i = 0; i < r; i++ {
		sum := ZeroSum
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[i*c+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
