// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// FromSlice builds a vector whose length is len(data).
func FromSlice[T scalar.Element](data []T) (*Dense[T], error) {
	if err := ValidateLength(len(data)); err != nil {
		return nil, vectorErrorf("FromSlice", err)
	}
	return fromValid(data), nil
}

// FromSliceOf builds a vector in a runtime-chosen domain; every element
// must have exactly the kind's element type.
func FromSliceOf(kind scalar.Kind, data []any) (Vector, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, vectorErrorf("FromSliceOf", err)
	}
	if err := ValidateLength(len(data)); err != nil {
		return nil, vectorErrorf("FromSliceOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return typedFromAny[bool]("FromSliceOf", data)
	case scalar.Integer:
		return typedFromAny[int]("FromSliceOf", data)
	default:
		return typedFromAny[float64]("FromSliceOf", data)
	}
}

// Infer builds a vector whose domain is the runtime type of data[0]; all
// elements must share it exactly.
func Infer(data []any) (Vector, error) {
	if err := ValidateLength(len(data)); err != nil {
		return nil, vectorErrorf("Infer", err)
	}
	kind, err := scalar.KindOf(data[0])
	if err != nil {
		return nil, vectorErrorf("Infer", err)
	}
	switch kind {
	case scalar.Boolean:
		return typedFromAny[bool]("Infer", data)
	case scalar.Integer:
		return typedFromAny[int]("Infer", data)
	default:
		return typedFromAny[float64]("Infer", data)
	}
}

func typedFromAny[T scalar.Element](tag string, data []any) (Vector, error) {
	out := make([]T, len(data))
	for i, x := range data {
		t, err := scalar.Check[T](x)
		if err != nil {
			return nil, vectorErrorf(tag, fmt.Errorf("element %d: %w", i, err))
		}
		out[i] = t
	}
	return &Dense[T]{m: len(out), data: out}, nil
}

// Zeros returns a vector of m additive identities.
func Zeros[T scalar.Element](m int) (*Dense[T], error) {
	return filled[T]("Zeros", m, scalar.DescriptorOf[T]().Zero())
}

// Ones returns a vector of m multiplicative identities.
func Ones[T scalar.Element](m int) (*Dense[T], error) {
	return filled[T]("Ones", m, scalar.DescriptorOf[T]().One())
}

// Basis returns the k-th standard basis vector of length m: one at k,
// zero elsewhere. It is the column k of Identity(m).
func Basis[T scalar.Element](m, k int) (*Dense[T], error) {
	v, err := Zeros[T](m)
	if err != nil {
		return nil, vectorErrorf("Basis", err)
	}
	if err = v.Set(k, scalar.DescriptorOf[T]().One()); err != nil {
		return nil, vectorErrorf("Basis", err)
	}
	return v, nil
}

func filled[T scalar.Element](tag string, m int, x T) (*Dense[T], error) {
	if err := ValidateLength(m); err != nil {
		return nil, vectorErrorf(tag, err)
	}
	data := make([]T, m)
	for i := range data {
		data[i] = x
	}
	return &Dense[T]{m: m, data: data}, nil
}

// ZerosOf is Zeros with the domain chosen at run time.
func ZerosOf(kind scalar.Kind, m int) (Vector, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, vectorErrorf("ZerosOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return variant[bool](Zeros[bool](m))
	case scalar.Integer:
		return variant[int](Zeros[int](m))
	default:
		return variant[float64](Zeros[float64](m))
	}
}

// OnesOf is Ones with the domain chosen at run time.
func OnesOf(kind scalar.Kind, m int) (Vector, error) {
	if err := scalar.Require(kind); err != nil {
		return nil, vectorErrorf("OnesOf", err)
	}
	switch kind {
	case scalar.Boolean:
		return variant[bool](Ones[bool](m))
	case scalar.Integer:
		return variant[int](Ones[int](m))
	default:
		return variant[float64](Ones[float64](m))
	}
}

func variant[T scalar.Element](v *Dense[T], err error) (Vector, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
