// SPDX-License-Identifier: MIT
// Package scalar: per-domain constant tables.
//
// Purpose:
//   - Give every supported domain exactly one Descriptor holding its additive
//     identity, multiplicative identity and element-type tag.
//   - Select the descriptor from the element type at compile time (generics),
//     so containers never look constants up through runtime reflection.

package scalar

// Element is the set of Go types a container can hold. One type per
// supported domain; exact types only (no ~), so named types cannot slip in.
type Element interface {
	bool | int | float64
}

// Descriptor is the constant table of one scalar domain.
type Descriptor[T Element] struct {
	kind Kind
	zero T
	one  T
}

// Domain descriptors for the supported kinds.
var (
	BooleanDomain = Descriptor[bool]{kind: Boolean, zero: false, one: true}
	IntegerDomain = Descriptor[int]{kind: Integer, zero: 0, one: 1}
	RealDomain    = Descriptor[float64]{kind: Real, zero: 0, one: 1}
)

// Kind returns the domain kind.
func (d Descriptor[T]) Kind() Kind { return d.kind }

// Zero returns the additive identity.
func (d Descriptor[T]) Zero() T { return d.zero }

// One returns the multiplicative identity.
func (d Descriptor[T]) One() T { return d.one }

// Tag returns the element-type tag.
func (d Descriptor[T]) Tag() string { return d.kind.Tag() }

// DescriptorOf returns the descriptor for element type T.
// The switch is exhaustive over Element.
func DescriptorOf[T Element]() Descriptor[T] {
	var probe T
	switch any(probe).(type) {
	case bool:
		return any(BooleanDomain).(Descriptor[T])
	case int:
		return any(IntegerDomain).(Descriptor[T])
	default: // float64
		return any(RealDomain).(Descriptor[T])
	}
}

// KindFor returns the domain kind of element type T.
func KindFor[T Element]() Kind {
	return DescriptorOf[T]().Kind()
}
