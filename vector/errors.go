// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// Shared sentinels; see package scalar.
var (
	ErrTypeMismatch      = scalar.ErrTypeMismatch
	ErrInvalidDimensions = scalar.ErrInvalidDimensions
	ErrDimensionMismatch = scalar.ErrDimensionMismatch
	ErrOutOfBounds       = scalar.ErrOutOfBounds
	ErrNotImplemented    = scalar.ErrNotImplemented
	ErrNilVector         = scalar.ErrNilMatrix
)

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func denseErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}
