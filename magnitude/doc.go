// SPDX-License-Identifier: MIT

// Package magnitude measures the diversity of a set of text items as the
// magnitude of the finite metric space they span.
//
// 🚀 What is magnitude?
//
//	Given n items and a distance d, build the similarity matrix
//	Z[i][j] = exp(-t·d(i,j)), solve Z·w = 1 for the weighting w, and sum it.
//	The result behaves like an "effective number of distinct items":
//	  • n identical items        → ≈ 1
//	  • n mutually unrelated items → ≈ n
//
// ✨ Key features:
//   - Compute: magnitude, weights, diversity score (magnitude/n), redundancy
//     pairs above a similarity threshold and a readable interpretation
//   - ComputeIncremental: extend a prior result by one item, reusing its
//     similarity matrix
//   - DiversityContribution: marginal magnitude gain of one candidate
//   - SelectDiverseSubset: greedy k-subset maximizing magnitude gain
//
// ⚙️ Usage:
//
//	eng, err := magnitude.New(magnitude.WithDistanceName("ngram"))
//	res, err := eng.Compute(prompts, false)
//	fmt.Println(res.Value, res.Interpretation)
//
// Numerical policy:
//
//	A tiny ridge (default 1e-10) is added to the diagonal before Gaussian
//	elimination with partial pivoting. When any pivot still falls below 1e-12
//	the whole weighting falls back to uniform 1/n (Result.Fallback is set),
//	so callers never see NaN or Inf.
//
//	Magnitude stays in [1, n] only when Z is positive definite. Cosine and
//	ngram distances behave well, but the edit distance under the -ln
//	transform is not of negative type: some sets of distinct short strings,
//	e.g. {"dcb", "caa", " ca", "c dd", "a ca", "abc", "aabcd", " ", "cb"},
//	yield an indefinite Z and a magnitude near -14.7. The solve is still
//	exact (tiny residual). The reported Value keeps the solved number, while
//	DiversityScore is clamped into [0,1]. Switch to the ngram or cosine
//	distance when bounded magnitudes matter more than edit sensitivity.
//
// Performance:
//
//   - Compute: O(n²) distance calls + O(n³) solve
//   - SelectDiverseSubset: O(k·|items|·k³) solves, fine for prompt sets of
//     dozens to low hundreds of items
//
// An Engine is immutable after New and safe for concurrent use.
package magnitude
