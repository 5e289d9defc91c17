// SPDX-License-Identifier: MIT

package distance

import "math"

const (
	// MaxDistance is returned when two inputs share nothing. It stands in
	// for +Inf so exp(-scale·d) stays a positive finite number.
	MaxDistance = 10.0

	// logEpsilon keeps -ln(1 - x + ε) finite as x approaches 1.
	logEpsilon = 1e-10

	// fullDistanceTol treats normalized distances this close to 1 as "no overlap".
	fullDistanceTol = 1e-9
)

// Provider computes the distance between two strings.
//
// Implementations must be symmetric, return 0 for identical inputs and a
// finite non-negative value otherwise. They must be safe for concurrent use.
type Provider interface {
	Distance(a, b string) float64
}

// Func adapts an ordinary function to the Provider interface.
type Func func(a, b string) float64

// Distance calls f(a, b).
func (f Func) Distance(a, b string) float64 { return f(a, b) }

// logTransform maps a normalized distance x ∈ [0,1] to [0, MaxDistance].
//   - x <= 0          → 0 (identical inputs)
//   - x >= 1 - 1e-9   → MaxDistance (no overlap)
//   - otherwise       → min(-ln(1 - x + ε), MaxDistance)
func logTransform(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1-fullDistanceTol {
		return MaxDistance
	}

	return math.Min(-math.Log(1-x+logEpsilon), MaxDistance)
}

// jaccardDistance returns the transformed Jaccard distance between two sets.
// An empty set on either side yields MaxDistance.
func jaccardDistance(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return MaxDistance
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	inter := 0
	for k := range small {
		if _, ok := large[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter

	return logTransform(1 - float64(inter)/float64(union))
}
