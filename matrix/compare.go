// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural equality (Equal) and element-wise equality (ElemEqual*).
//   - Dynamic accessors (Get, SetAny) that back the Matrix variant.
//
// Design:
//   - Equal never fails: foreign operands are simply unequal.
//   - ElemEqual always yields a *BooleanMatrix of the receiver's shape.
//   - Concrete-type identity is decided by the type parameter: a
//     *Dense[bool] and a *Dense[int] are never the same type, whatever
//     their values.
//
// Determinism & Performance:
//   - Fixed flat 0..r*c-1 loops over both buffers; O(r*c) time.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// Equal reports whether other is a *Dense of the same concrete domain,
// with the same shape and equal elements. Comparing against anything else
// (another domain, a scalar, nil) yields false.
func (m *Dense[T]) Equal(other any) bool {
	o, ok := other.(*Dense[T])
	if !ok {
		return false
	}
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// ElemEqual compares m element by element.
//   - other is a *Dense[T]: per-cell equality; shapes must match.
//   - other is a T: every cell is compared with that scalar (broadcast).
//   - other is a matrix of another domain, or any other type: ErrTypeMismatch.
//
// Errors: ErrDimensionMismatch, ErrTypeMismatch, ErrNilMatrix.
func (m *Dense[T]) ElemEqual(other any) (*Dense[bool], error) {
	switch o := other.(type) {
	case *Dense[T]:
		return m.ElemEqualMatrix(o)
	case T:
		return m.ElemEqualScalar(o), nil
	case Matrix:
		return nil, matrixErrorf("ElemEqual", fmt.Errorf("cannot compare %s matrix with %s matrix: %w",
			m.Kind(), kindName(o), ErrTypeMismatch))
	default:
		return nil, matrixErrorf("ElemEqual", fmt.Errorf("cannot compare object of type %T with %s matrix: %w",
			other, m.Kind(), ErrTypeMismatch))
	}
}

// ElemEqualMatrix returns out[i,j] = (m[i,j] == o[i,j]).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) ElemEqualMatrix(o *Dense[T]) (*Dense[bool], error) {
	if o == nil {
		return nil, matrixErrorf("ElemEqual", ErrNilMatrix)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf("ElemEqual", err)
	}
	out := newDense[bool](m.r, m.c)
	for k := range m.data {
		out.data[k] = m.data[k] == o.data[k]
	}

	return out, nil
}

// ElemEqualScalar returns out[i,j] = (m[i,j] == v).
func (m *Dense[T]) ElemEqualScalar(v T) *Dense[bool] {
	out := newDense[bool](m.r, m.c)
	for k := range m.data {
		out.data[k] = m.data[k] == v
	}

	return out
}

// Get returns the element addressed by a dynamic key.
// Errors: ErrTypeMismatch (malformed key), ErrOutOfBounds.
func (m *Dense[T]) Get(key any) (any, error) {
	i, j, err := parseKey(key)
	if err != nil {
		return nil, matrixErrorf("Get", err)
	}
	v, err := m.At(i, j)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// SetAny stores v at a dynamic key. The key is validated first, then the
// value's type must be exactly T; on any failure the matrix is unchanged.
// Errors: ErrTypeMismatch, ErrOutOfBounds.
func (m *Dense[T]) SetAny(key any, v any) error {
	i, j, err := parseKey(key)
	if err != nil {
		return matrixErrorf("SetAny", err)
	}
	if _, err = m.indexOf(ctxSet, i, j); err != nil {
		return err
	}
	t, err := scalar.Check[T](v)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}

	return m.Set(i, j, t)
}
