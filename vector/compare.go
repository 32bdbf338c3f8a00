// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Equal reports whether other is a *Dense of the same domain, length and
// elements. Never fails.
func (v *Dense[T]) Equal(other any) bool {
	o, ok := other.(*Dense[T])
	if !ok {
		return false
	}
	if v == nil || o == nil {
		return v == o
	}
	if v.m != o.m {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// ElemEqual compares element by element against a same-domain vector of
// equal length, or broadcasts against a scalar of the element type.
func (v *Dense[T]) ElemEqual(other any) (*Dense[bool], error) {
	switch o := other.(type) {
	case *Dense[T]:
		if o == nil {
			return nil, vectorErrorf("ElemEqual", ErrNilVector)
		}
		if o.m != v.m {
			return nil, vectorErrorf("ElemEqual", fmt.Errorf("lengths %d and %d: %w", v.m, o.m, ErrDimensionMismatch))
		}
		out := make([]bool, v.m)
		for i := range v.data {
			out[i] = v.data[i] == o.data[i]
		}
		return &Dense[bool]{m: v.m, data: out}, nil
	case T:
		out := make([]bool, v.m)
		for i := range v.data {
			out[i] = v.data[i] == o
		}
		return &Dense[bool]{m: v.m, data: out}, nil
	case Vector:
		return nil, vectorErrorf("ElemEqual", fmt.Errorf("cannot compare %s vector with %s vector: %w",
			v.Kind(), o.Kind(), ErrTypeMismatch))
	default:
		return nil, vectorErrorf("ElemEqual", fmt.Errorf("cannot compare object of type %T with %s vector: %w",
			other, v.Kind(), ErrTypeMismatch))
	}
}
