// SPDX-License-Identifier: MIT

// Package scalar describes the scalar domains that mytrix containers are
// built over, and holds the error taxonomy shared by matrix and vector.
//
// A domain is one of a closed set of kinds:
//
//	Boolean : elements of type bool,    zero=false, one=true
//	Integer : elements of type int,     zero=0,     one=1
//	Real    : elements of type float64, zero=0.0,   one=1.0
//	Rational: reserved; every constructor rejects it with ErrNotImplemented
//	Complex : reserved; every constructor rejects it with ErrNotImplemented
//
// Statically typed code selects a domain through the Element constraint
// (Dense[bool], Dense[int], Dense[float64]); the compiler rejects any other
// element type. Dynamic code (decoded documents, CLI input) goes through
// KindOf and Check, which inspect runtime values by a closed type switch
// and never widen: a bool is never an Integer, an int is never a Real.
package scalar
