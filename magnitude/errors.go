// SPDX-License-Identifier: MIT

package magnitude

import "errors"

var (
	// ErrInvalidScale indicates a non-positive or non-finite scale.
	ErrInvalidScale = errors.New("magnitude: scale must be finite and > 0")

	// ErrInvalidRegularization indicates a negative or non-finite ridge.
	ErrInvalidRegularization = errors.New("magnitude: regularization must be finite and >= 0")

	// ErrInvalidThreshold indicates a redundancy threshold outside [0,1].
	ErrInvalidThreshold = errors.New("magnitude: threshold must be within [0,1]")

	// ErrNilDistance indicates WithDistance(nil).
	ErrNilDistance = errors.New("magnitude: nil distance provider")

	// ErrInvalidItem indicates an item that is not valid UTF-8 text.
	ErrInvalidItem = errors.New("magnitude: item is not valid UTF-8")

	// ErrNilResult indicates ComputeIncremental was given no prior result.
	ErrNilResult = errors.New("magnitude: nil prior result")
)
