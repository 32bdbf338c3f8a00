// SPDX-License-Identifier: MIT
// Package scalar: runtime inspection for dynamic entry points.
//
// Typed code never needs this file: Dense[int] only accepts int. These
// helpers serve factories that receive []any (decoded documents, CLI
// input) and must decide a domain, or enforce one, at run time.
// Every decision is a closed type switch; no reflection.

package scalar

import (
	"fmt"
	"math/big"
)

// KindOf returns the domain of a runtime value.
// bool, int and float64 map to Boolean, Integer and Real. Rational and
// complex values are recognised but rejected with ErrNotImplemented, as
// is every other type (there is no domain to put it in).
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case bool:
		return Boolean, nil
	case int:
		return Integer, nil
	case float64:
		return Real, nil
	case *big.Rat, big.Rat:
		return Rational, Require(Rational)
	case complex64, complex128:
		return Complex, Require(Complex)
	default:
		return Invalid, fmt.Errorf("no domain for element type %T: %w", v, ErrNotImplemented)
	}
}

// Check asserts that v has exactly the element type T.
// It never converts: Check[int](true) and Check[float64](1) both fail.
func Check[T Element](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("value of type %T does not match %s domain (%s): %w",
			v, KindFor[T](), KindFor[T]().Tag(), ErrTypeMismatch)
	}
	return t, nil
}

// Dimension converts a dynamically typed dimension or index to int.
// Only Go integer types are integral; bool, floats (even 2.0), strings and
// nil fail with ErrTypeMismatch. The sign is not checked here.
func Dimension(v any) (int, error) {
	switch d := v.(type) {
	case int:
		return d, nil
	case int8:
		return int(d), nil
	case int16:
		return int(d), nil
	case int32:
		return int(d), nil
	case int64:
		return int(d), nil
	case uint8:
		return int(d), nil
	case uint16:
		return int(d), nil
	case uint32:
		return int(d), nil
	case uint:
		if d > uint(maxInt) {
			return 0, fmt.Errorf("dimension %d overflows int: %w", d, ErrInvalidDimensions)
		}
		return int(d), nil
	case uint64:
		if d > uint64(maxInt) {
			return 0, fmt.Errorf("dimension %d overflows int: %w", d, ErrInvalidDimensions)
		}
		return int(d), nil
	default:
		return 0, fmt.Errorf("dimension of type %T is not integral: %w", v, ErrTypeMismatch)
	}
}

const maxInt = int(^uint(0) >> 1)
