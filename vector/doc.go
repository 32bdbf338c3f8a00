// SPDX-License-Identifier: MIT

// Package vector provides dense vectors over a fixed scalar domain,
// mirroring package matrix one dimension down.
//
// Dense[T] stores a length m > 0 and m elements of T (bool, int or float64).
// The original surface is New(m, data); the rest follows the matrix
// pattern: FromSlice/FromSliceOf/Infer, Zeros/Ones/Basis, bounds-checked
// At/Set and Get/SetAny, Equal and ElemEqual. Rational and Complex are
// rejected with ErrNotImplemented by every kind-driven constructor.
package vector
