// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The sentinels are owned by package scalar so that matrix and vector report
// the same taxonomy; this file re-exports them under the matrix namespace.
// All entry points MUST return one of these (possibly wrapped with %w) and
// tests MUST check them via errors.Is. No function panics on user input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// NOTE ON WRAPPING
// ----------------
// Detection sites wrap with denseErrorf (coordinates) or matrixErrorf
// (call-site tag). DO NOT compare messages; match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// reserved domain -> dimension type -> dimension value -> shape -> element type.

var (
	// ErrTypeMismatch: wrong runtime type for a dimension, key, element or operand.
	ErrTypeMismatch = scalar.ErrTypeMismatch

	// ErrInvalidDimensions: m <= 0 or n <= 0.
	ErrInvalidDimensions = scalar.ErrInvalidDimensions

	// ErrDimensionMismatch: ragged rows, or operands of different shape.
	ErrDimensionMismatch = scalar.ErrDimensionMismatch

	// ErrOutOfBounds: index outside [0,m) × [0,n).
	ErrOutOfBounds = scalar.ErrOutOfBounds

	// ErrNotImplemented: Rational/Complex, or an element type with no domain.
	ErrNotImplemented = scalar.ErrNotImplemented

	// ErrNilMatrix: nil *Dense receiver or operand.
	ErrNilMatrix = scalar.ErrNilMatrix
)

// ErrConformability is the older name for operand shape mismatch.
//
// Deprecated: use ErrDimensionMismatch.
var ErrConformability = ErrDimensionMismatch

// matrixErrorf tags err with the public entry point that detected it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
