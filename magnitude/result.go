// SPDX-License-Identifier: MIT

package magnitude

import (
	"fmt"
	"sort"
)

// Interpretation buckets by diversity score (lower bound inclusive).
const (
	excellentFloor = 0.9
	goodFloor      = 0.7
	moderateFloor  = 0.5
	lowFloor       = 0.3
)

const (
	msgEmpty  = "Empty set has zero magnitude"
	msgSingle = "Single item has magnitude 1.00 (100% diversity)"
)

// RedundancyPair flags two items whose similarity exceeds the threshold.
// I < J always holds.
type RedundancyPair struct {
	I          int     `json:"i"`
	J          int     `json:"j"`
	Similarity float64 `json:"similarity"`
}

// Result is the outcome of one magnitude computation. Results are built
// fresh per call and must be treated as read-only by callers.
type Result struct {
	// Value is the magnitude, sum(Weights). It lies in [1, n] whenever Z is
	// positive definite, as observed for the cosine and ngram distances.
	// The edit distance after the -ln transform is not
	// of negative type, so some sets of distinct short strings give an
	// indefinite Z and a Value below 1, even negative. Value is reported as
	// solved, never clamped.
	Value float64 `json:"value"`
	// Weights solves Z·w = 1 (uniform 1/n when Fallback is set).
	Weights []float64 `json:"weights"`
	// Similarity is Z, populated only when details were requested.
	Similarity [][]float64 `json:"similarity,omitempty"`
	// DiversityScore is Value/Size clamped to [0,1]; 0 for the empty set.
	// An out-of-range Value clamps to 0 (or 1), so the interpretation then
	// reads "High redundancy" even for distinct items.
	DiversityScore float64 `json:"diversity_score"`
	// RedundancyPairs lists pairs above the threshold, most similar first.
	RedundancyPairs []RedundancyPair `json:"redundancy_pairs"`
	// Interpretation is a one-line human summary.
	Interpretation string `json:"interpretation"`
	// Size is the number of items measured.
	Size int `json:"size"`
	// Fallback reports that matrix.Solve returned an error of any kind,
	// not only a pivot below PivotTolerance, and uniform 1/n weights were
	// used instead.
	Fallback bool `json:"fallback"`

	// origin and items identify the engine and input that produced the
	// result, so ComputeIncremental only reuses Similarity when both match.
	origin *Engine
	items  []string
}

// diversityLabel buckets a diversity score.
func diversityLabel(score float64) string {
	switch {
	case score >= excellentFloor:
		return "Excellent diversity"
	case score >= goodFloor:
		return "Good diversity"
	case score >= moderateFloor:
		return "Moderate diversity"
	case score >= lowFloor:
		return "Low diversity"
	default:
		return "High redundancy"
	}
}

func interpret(value float64, n int, score float64) string {
	return fmt.Sprintf("%s: magnitude %.2f across %d items (%.0f%% diversity)",
		diversityLabel(score), value, n, score*100)
}

// redundancyPairs collects (i<j) with z[i][j] > threshold, sorted by
// similarity descending; ties keep row-major order.
func redundancyPairs(z [][]float64, threshold float64) []RedundancyPair {
	pairs := make([]RedundancyPair, 0)
	for i := range z {
		for j := i + 1; j < len(z); j++ {
			if z[i][j] > threshold {
				pairs = append(pairs, RedundancyPair{I: i, J: j, Similarity: z[i][j]})
			}
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Similarity > pairs[b].Similarity
	})

	return pairs
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
