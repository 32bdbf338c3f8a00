// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file contains ONLY the dynamic Matrix variant and the Key type used
// by the dynamic accessors. Errors live in errors.go, storage in dense.go.
package matrix

import "github.com/katalvlaran/mytrix/scalar"

// Key addresses one cell of a matrix by (row, column).
type Key struct {
	Row int
	Col int
}

// Matrix is the variant returned by factories that choose the domain at
// run time (Infer, FromRowsOf, ZerosOf, ...). It is sealed: the only
// implementations are *Dense[bool], *Dense[int] and *Dense[float64].
// Callers that need the concrete type use a type switch:
//
//	switch d := m.(type) {
//	case *matrix.BooleanMatrix:
//	case *matrix.IntegerMatrix:
//	case *matrix.RealMatrix:
//	}
//
// Complexity notes: all methods are O(1) except Equal, ElemEqual,
// CloneMatrix and String (O(m*n)).
type Matrix interface {
	// Kind returns the scalar domain, fixed at construction.
	Kind() scalar.Kind

	// Dims returns (rows, cols).
	Dims() (int, int)

	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Get returns the element addressed by key.
	// key must be a Key, [2]int, or a two-element []int / []any of ints.
	// Returns ErrTypeMismatch for a malformed key, ErrOutOfBounds outside the shape.
	Get(key any) (any, error)

	// SetAny stores v at key. v must have exactly the domain element type,
	// otherwise ErrTypeMismatch is returned and the matrix is left unchanged.
	SetAny(key any, v any) error

	// Equal reports structural equality; it never fails.
	Equal(other any) bool

	// ElemEqual compares cell by cell against a matrix of the same concrete
	// type and shape, or broadcasts against a scalar of the element type.
	ElemEqual(other any) (*Dense[bool], error)

	// CloneMatrix returns an independent deep copy.
	CloneMatrix() Matrix

	// String renders one bracketed row per line.
	String() string

	sealed()
}

// Concrete domain types.
type (
	// BooleanMatrix holds bool elements; zero=false, one=true.
	BooleanMatrix = Dense[bool]
	// IntegerMatrix holds int elements; zero=0, one=1.
	IntegerMatrix = Dense[int]
	// RealMatrix holds float64 elements; zero=0.0, one=1.0.
	RealMatrix = Dense[float64]
)

// Compile-time assertions: every concrete domain implements the variant.
var (
	_ Matrix = (*BooleanMatrix)(nil)
	_ Matrix = (*IntegerMatrix)(nil)
	_ Matrix = (*RealMatrix)(nil)
)
