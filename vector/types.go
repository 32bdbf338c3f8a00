// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/mytrix/scalar"

// Vector is the sealed variant returned by dynamic factories.
// Implemented only by *Dense[bool], *Dense[int] and *Dense[float64].
type Vector interface {
	Kind() scalar.Kind
	Len() int
	Get(i any) (any, error)
	SetAny(i any, v any) error
	Equal(other any) bool
	ElemEqual(other any) (*Dense[bool], error)
	CloneVector() Vector
	String() string

	sealed()
}

// Concrete domain types.
type (
	BooleanVector = Dense[bool]
	IntegerVector = Dense[int]
	RealVector    = Dense[float64]
)

var (
	_ Vector = (*BooleanVector)(nil)
	_ Vector = (*IntegerVector)(nil)
	_ Vector = (*RealVector)(nil)
)
