// SPDX-License-Identifier: MIT

package distance

import "errors"

var (
	// ErrUnknownDistance is returned by ByName for an unregistered name.
	ErrUnknownDistance = errors.New("distance: unknown distance function")

	// ErrInvalidCapacity indicates a negative cache capacity.
	ErrInvalidCapacity = errors.New("distance: cache capacity must be >= 0")

	// ErrInvalidNGramSize indicates an n-gram size below 1.
	ErrInvalidNGramSize = errors.New("distance: n-gram size must be >= 1")

	// ErrNilProvider indicates a nil Provider was passed to Matrix.
	ErrNilProvider = errors.New("distance: nil provider")

	// ErrInvalidDistance indicates a provider returned a negative, NaN or
	// infinite value.
	ErrInvalidDistance = errors.New("distance: negative or non-finite distance")

	// ErrNoItems indicates Matrix was called with an empty item list.
	ErrNoItems = errors.New("distance: no items")
)
