// SPDX-License-Identifier: MIT

package magnitude

import "time"

// Operation labels passed to Observer.ObserveCompute.
const (
	OpCompute     = "compute"
	OpIncremental = "incremental"
)

// Observer receives engine events. Implementations must be safe for
// concurrent use; they are called synchronously on the caller's goroutine.
type Observer interface {
	// ObserveCompute fires once per solved (or base-case) magnitude.
	ObserveCompute(op string, items int, elapsed time.Duration, fallback bool)

	// ObserveSelection fires once per SelectDiverseSubset call.
	ObserveSelection(candidates, selected int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveCompute(string, int, time.Duration, bool) {}
func (nopObserver) ObserveSelection(int, int, time.Duration)        {}
