// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mytrix/scalar"
)

// Dense is a vector of length m over the scalar domain of T.
type Dense[T scalar.Element] struct {
	m    int
	data []T // len == m
}

// ValidateLength checks that m is positive.
func ValidateLength(m int) error {
	if m <= 0 {
		return vectorErrorf("ValidateLength", fmt.Errorf("(%d): %w", m, ErrInvalidDimensions))
	}
	return nil
}

// CheckLength is the dynamically typed form of ValidateLength.
func CheckLength(m any) (int, error) {
	n, err := scalar.Dimension(m)
	if err != nil {
		return 0, vectorErrorf("CheckLength", err)
	}
	if err = ValidateLength(n); err != nil {
		return 0, vectorErrorf("CheckLength", err)
	}
	return n, nil
}

// New builds a vector of length m holding a copy of data.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != m).
func New[T scalar.Element](m int, data []T) (*Dense[T], error) {
	if err := ValidateLength(m); err != nil {
		return nil, vectorErrorf("New", err)
	}
	if len(data) != m {
		return nil, vectorErrorf("New", fmt.Errorf("got %d elements, want %d: %w", len(data), m, ErrDimensionMismatch))
	}
	return fromValid(data), nil
}

func fromValid[T scalar.Element](data []T) *Dense[T] {
	buf := make([]T, len(data))
	copy(buf, data)
	return &Dense[T]{m: len(data), data: buf}
}

// Kind returns the scalar domain of the vector.
func (v *Dense[T]) Kind() scalar.Kind { return scalar.KindFor[T]() }

// Descriptor returns the constant table of the vector domain.
func (v *Dense[T]) Descriptor() scalar.Descriptor[T] { return scalar.DescriptorOf[T]() }

// Len returns the length m.
func (v *Dense[T]) Len() int { return v.m }

// At returns element i.
func (v *Dense[T]) At(i int) (T, error) {
	if i < 0 || i >= v.m {
		var zero T
		return zero, denseErrorf("At", i, ErrOutOfBounds)
	}
	return v.data[i], nil
}

// Set stores x at i.
func (v *Dense[T]) Set(i int, x T) error {
	if i < 0 || i >= v.m {
		return denseErrorf("Set", i, ErrOutOfBounds)
	}
	v.data[i] = x
	return nil
}

// Get returns element i addressed dynamically; i must be a Go integer.
func (v *Dense[T]) Get(i any) (any, error) {
	idx, err := index(i)
	if err != nil {
		return nil, vectorErrorf("Get", err)
	}
	x, err := v.At(idx)
	if err != nil {
		return nil, err
	}
	return x, nil
}

// SetAny stores x at a dynamic index. x must be exactly T; on any failure
// the vector is unchanged.
func (v *Dense[T]) SetAny(i any, x any) error {
	idx, err := index(i)
	if err != nil {
		return vectorErrorf("SetAny", err)
	}
	if idx < 0 || idx >= v.m {
		return denseErrorf("Set", idx, ErrOutOfBounds)
	}
	t, err := scalar.Check[T](x)
	if err != nil {
		return denseErrorf("Set", idx, err)
	}
	v.data[idx] = t
	return nil
}

func index(i any) (int, error) {
	idx, err := scalar.Dimension(i)
	if err != nil {
		return 0, fmt.Errorf("index: %w", ErrTypeMismatch)
	}
	return idx, nil
}

// Data returns a copy of the elements.
func (v *Dense[T]) Data() []T {
	out := make([]T, v.m)
	copy(out, v.data)
	return out
}

// Clone returns a deep copy.
func (v *Dense[T]) Clone() *Dense[T] { return fromValid(v.data) }

// CloneVector is Clone behind the Vector variant.
func (v *Dense[T]) CloneVector() Vector { return v.Clone() }

// String renders the vector as a bracketed list.
func (v *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]")
	return sb.String()
}

func (v *Dense[T]) sealed() {}
