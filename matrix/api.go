// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points composed from the
//     canonical factories and validators.
//   - Avoid any logic duplication; each facade delegates.

package matrix

import "github.com/katalvlaran/mytrix/scalar"

// ZerosLike returns a zero matrix with the same shape and domain as m.
// Errors: ErrNilMatrix.
func ZerosLike[T scalar.Element](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}
	return Zeros[T](m.r, m.c)
}

// OnesLike returns an all-ones matrix with the same shape and domain as m.
func OnesLike[T scalar.Element](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf("OnesLike", ErrNilMatrix)
	}
	return Ones[T](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func IdentityLike[T scalar.Element](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf("IdentityLike", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	return Identity[T](m.r)
}

// CloneMatrix returns an independent copy of any Matrix variant.
func CloneMatrix(m Matrix) (Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("CloneMatrix", ErrNilMatrix)
	}
	return m.CloneMatrix(), nil
}

// Equal is the symmetric form of a.Equal(b); nil variants are equal only to each other.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
