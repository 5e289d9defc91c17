// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel behind the
// magnitude engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors that
//     return sentinel errors instead of panicking.
//   - Apply, an element-wise map used to derive similarity matrices from
//     distance matrices (Z = exp(-t·D)).
//   - Solve, Gaussian elimination with partial pivoting, an optional
//     diagonal regularization shift and a configurable pivot tolerance.
//   - Validators shared by every kernel (square, symmetric, vector length).
//
// Matrices here are small and dense (dozens to low hundreds of rows), so
// O(n²) memory and O(n³) solves are acceptable.
package matrix
