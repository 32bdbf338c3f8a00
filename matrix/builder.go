// SPDX-License-Identifier: MIT
// Package matrix - factory constructors.
//
// Purpose:
//   - Typed factories (FromRows, Zeros, Ones, Identity) where the domain is
//     the type parameter and element types are checked by the compiler.
//   - Dynamic factories (FromRowsOf, Infer, ZerosOf, OnesOf, IdentityOf)
//     where the domain is a scalar.Kind chosen at run time; these return the
//     sealed Matrix variant and perform the exact type-tag checks the
//     compiler cannot.
//
// Determinism:
//   - Fixed i→j fill order; validation fails on the first violation in
//     row-major order, so the reported cell is stable.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// FromRows builds a matrix from explicit rows.
// m is the number of rows, n the length of the first row; every other row
// must have length n.
//
// Errors: ErrInvalidDimensions (no rows, empty first row),
// ErrDimensionMismatch (ragged rows).
func FromRows[T scalar.Element](rows [][]T) (*Dense[T], error) {
	m, n, err := shapeOf(rows)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	return fromValidRows(m, n, rows), nil
}

// FromRowsOf builds a matrix in the domain kind from dynamically typed rows.
// Implementation:
//   - Stage 1: scalar.Require(kind) - Rational/Complex fail here, unconditionally.
//   - Stage 2: shape inference as FromRows.
//   - Stage 3: every element must have exactly the kind's element type.
//
// Errors: ErrNotImplemented, ErrTypeMismatch, ErrInvalidDimensions, ErrDimensionMismatch.
func FromRowsOf(kind scalar.Kind, rows [][]any) (Matrix, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, matrixErrorf("FromRowsOf", err)
	}
	m, n, err := shapeOf(rows)
	if err != nil {
		return nil, matrixErrorf("FromRowsOf", err)
	}

	switch kind {
	case scalar.Boolean:
		return typedFromAny[bool]("FromRowsOf", m, n, rows)
	case scalar.Integer:
		return typedFromAny[int]("FromRowsOf", m, n, rows)
	default: // scalar.Real; Require admitted nothing else
		return typedFromAny[float64]("FromRowsOf", m, n, rows)
	}
}

// Infer builds a matrix whose domain is taken from the runtime type of
// the first element. Every element in every row must share that exact
// type: mixed bool/int/float64 rows fail with ErrTypeMismatch. A first
// element with no supported domain fails with ErrNotImplemented.
//
// Callers that know the domain should use FromRows or FromRowsOf instead.
func Infer(rows [][]any) (Matrix, error) {
	m, n, err := shapeOf(rows)
	if err != nil {
		return nil, matrixErrorf("Infer", err)
	}
	kind, err := scalar.KindOf(rows[0][0])
	if err != nil {
		return nil, matrixErrorf("Infer", err)
	}

	switch kind {
	case scalar.Boolean:
		return typedFromAny[bool]("Infer", m, n, rows)
	case scalar.Integer:
		return typedFromAny[int]("Infer", m, n, rows)
	default: // scalar.Real
		return typedFromAny[float64]("Infer", m, n, rows)
	}
}

// typedFromAny converts shape-checked rows to element type T.
func typedFromAny[T scalar.Element](tag string, m, n int, rows [][]any) (Matrix, error) {
	typed, err := convertRows[T](rows)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return fromValidRows(m, n, typed), nil
}

// Zeros returns an m×n matrix filled with the domain's additive identity.
// Errors: ErrInvalidDimensions.
func Zeros[T scalar.Element](m, n int) (*Dense[T], error) {
	if err := ValidateDimensions(m, n); err != nil {
		return nil, matrixErrorf("Zeros", err)
	}
	d := newDense[T](m, n)
	d.Fill(scalar.DescriptorOf[T]().Zero())

	return d, nil
}

// Ones returns an m×n matrix with every element equal to the domain's
// multiplicative identity. The shape is always the requested m×n.
// Errors: ErrInvalidDimensions.
func Ones[T scalar.Element](m, n int) (*Dense[T], error) {
	if err := ValidateDimensions(m, n); err != nil {
		return nil, matrixErrorf("Ones", err)
	}
	d := newDense[T](m, n)
	d.Fill(scalar.DescriptorOf[T]().One())

	return d, nil
}

// Identity returns the m×m identity: one on the diagonal, zero elsewhere.
// Errors: ErrInvalidDimensions.
func Identity[T scalar.Element](m int) (*Dense[T], error) {
	if err := ValidateDimensions(m, m); err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	dom := scalar.DescriptorOf[T]()
	d := newDense[T](m, m)
	d.Fill(dom.Zero())
	for i := 0; i < m; i++ { // fixed i order; single write per diagonal cell
		d.data[i*m+i] = dom.One()
	}

	return d, nil
}

// ZerosOf is Zeros with the domain chosen at run time.
// Errors: ErrNotImplemented (reserved kind), ErrInvalidDimensions.
func ZerosOf(kind scalar.Kind, m, n int) (Matrix, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, matrixErrorf("ZerosOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return variant[bool](Zeros[bool](m, n))
	case scalar.Integer:
		return variant[int](Zeros[int](m, n))
	default:
		return variant[float64](Zeros[float64](m, n))
	}
}

// OnesOf is Ones with the domain chosen at run time.
func OnesOf(kind scalar.Kind, m, n int) (Matrix, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, matrixErrorf("OnesOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return variant[bool](Ones[bool](m, n))
	case scalar.Integer:
		return variant[int](Ones[int](m, n))
	default:
		return variant[float64](Ones[float64](m, n))
	}
}

// IdentityOf is Identity with the domain chosen at run time.
func IdentityOf(kind scalar.Kind, m int) (Matrix, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, matrixErrorf("IdentityOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return variant[bool](Identity[bool](m))
	case scalar.Integer:
		return variant[int](Identity[int](m))
	default:
		return variant[float64](Identity[float64](m))
	}
}

// variant lifts a typed factory result into the Matrix variant without
// producing a non-nil interface around a nil pointer.
func variant[T scalar.Element](d *Dense[T], err error) (Matrix, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Of returns m as the concrete *Dense[T], or ErrTypeMismatch when the
// variant holds another domain.
func Of[T scalar.Element](m Matrix) (*Dense[T], error) {
	d, ok := m.(*Dense[T])
	if !ok || d == nil {
		return nil, matrixErrorf("Of", fmt.Errorf("%s matrix is not %s: %w",
			kindName(m), scalar.KindFor[T](), ErrTypeMismatch))
	}
	return d, nil
}

// kindName names the domain of a possibly nil variant.
func kindName(m Matrix) string {
	if m == nil {
		return "nil"
	}
	return m.Kind().String()
}
