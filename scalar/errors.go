// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set shared by matrix and vector.
// Every failure the library reports matches exactly one of these through
// errors.Is. Detection sites wrap with fmt.Errorf("ctx: %w", ErrX) to add
// coordinates or type names; callers must not compare error strings.

package scalar

import "errors"

var (
	// ErrTypeMismatch is returned when an argument or element has the wrong
	// runtime type: a non-integral dimension, an element whose type is not
	// the domain's tag, a key that is not an integer pair, or a comparison
	// operand of an unsupported type.
	ErrTypeMismatch = errors.New("mytrix: type mismatch")

	// ErrInvalidDimensions indicates that requested dimensions are not positive.
	ErrInvalidDimensions = errors.New("mytrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates a shape inconsistency: rows of unequal
	// length, or two operands whose shapes differ.
	ErrDimensionMismatch = errors.New("mytrix: dimension mismatch")

	// ErrOutOfBounds indicates that an index is outside the container.
	ErrOutOfBounds = errors.New("mytrix: index out of bounds")

	// ErrNotImplemented marks a reserved domain (Rational, Complex) or an
	// element type for which no domain exists.
	ErrNotImplemented = errors.New("mytrix: not implemented")

	// ErrNilMatrix indicates that a nil container was passed where a value
	// was required.
	ErrNilMatrix = errors.New("mytrix: nil container")
)
