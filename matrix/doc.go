// SPDX-License-Identifier: MIT

// Package matrix provides dense, row-major matrices over a fixed scalar domain.
//
// The matrix package provides:
//
//   - Dense[T], generic over the element type (bool, int, float64), with the
//     aliases BooleanMatrix, IntegerMatrix and RealMatrix.
//   - Typed factories: New, FromRows, Zeros, Ones, Identity.
//   - Dynamic factories returning the sealed Matrix variant: FromRowsOf
//     (domain given), Infer (domain taken from the first element), ZerosOf,
//     OnesOf, IdentityOf. Rational and Complex are rejected with
//     ErrNotImplemented.
//   - Bounds-checked access (At/Set, and Get/SetAny with dynamic keys).
//   - Structural equality (Equal) and element-wise equality (ElemEqual),
//     the latter producing a BooleanMatrix.
//
// Shape is fixed at construction, content is mutable through Set. Matrices
// never share storage with their inputs or with each other. The package
// performs no locking; callers serialise mutation of shared instances.
//
// Example:
//
//	I, _ := matrix.Identity[bool](2)
//	want, _ := matrix.New(2, 2, [][]bool{{true, false}, {false, true}})
//	I.Equal(want) // true
package matrix
