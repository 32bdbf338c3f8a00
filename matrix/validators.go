// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, key and element checks.
//  - Keep constructors and accessors minimal by delegating validation here.
//  - Return sentinel errors (wrapped only with positional context) so call
//    sites can tag uniformly with matrixErrorf.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (dimension type → dimension value → shape → element type).
//  - All checks are pure and fail on the first violation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mytrix/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDimensions checks that m and n are both positive.
// Pure predicate, callable standalone before construction.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDimensions(m, n int) error {
	if m <= 0 || n <= 0 {
		return validatorErrorf("ValidateDimensions",
			fmt.Errorf("(%d, %d): %w", m, n, ErrInvalidDimensions))
	}

	return nil
}

// CheckDimensions is the dynamically typed form of ValidateDimensions.
// Non-integral values (strings, floats, bools, nil) fail with
// ErrTypeMismatch before any sign check; non-positive integers fail with
// ErrInvalidDimensions. On success the dimensions are returned as ints.
func CheckDimensions(m, n any) (int, int, error) {
	mi, err := scalar.Dimension(m)
	if err != nil {
		return 0, 0, validatorErrorf("CheckDimensions", err)
	}
	ni, err := scalar.Dimension(n)
	if err != nil {
		return 0, 0, validatorErrorf("CheckDimensions", err)
	}
	if err = ValidateDimensions(mi, ni); err != nil {
		return 0, 0, validatorErrorf("CheckDimensions", err)
	}

	return mi, ni, nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Errors: ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// shapeOf infers (m, n) from rows: m = number of rows, n = length of the
// first row. Both must be positive.
func shapeOf[E any](rows [][]E) (int, int, error) {
	if len(rows) == 0 {
		return 0, 0, fmt.Errorf("no rows: %w", ErrInvalidDimensions)
	}
	m, n := len(rows), len(rows[0])
	if err := ValidateDimensions(m, n); err != nil {
		return 0, 0, err
	}
	if err := validateRectangular(rows, n); err != nil {
		return 0, 0, err
	}

	return m, n, nil
}

// validateRectangular ensures every row has exactly n elements.
func validateRectangular[E any](rows [][]E, n int) error {
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}

	return nil
}

// convertRows enforces the exact element type T on every cell and returns
// typed rows. Fails on the first cell whose runtime type is not T.
func convertRows[T scalar.Element](rows [][]any) ([][]T, error) {
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = make([]T, len(row))
		for j, v := range row {
			t, err := scalar.Check[T](v)
			if err != nil {
				return nil, fmt.Errorf("element (%d,%d): %w", i, j, err)
			}
			out[i][j] = t
		}
	}

	return out, nil
}

// parseKey turns a dynamic key into (row, col).
// Accepted shapes: Key, *Key, [2]int, []int and []any with exactly two
// integral components. Everything else is ErrTypeMismatch; bounds are
// checked by the caller.
func parseKey(key any) (int, int, error) {
	switch k := key.(type) {
	case Key:
		return k.Row, k.Col, nil
	case *Key:
		if k == nil {
			return 0, 0, fmt.Errorf("nil key: %w", ErrTypeMismatch)
		}
		return k.Row, k.Col, nil
	case [2]int:
		return k[0], k[1], nil
	case []int:
		if len(k) != 2 {
			return 0, 0, fmt.Errorf("key must be a pair, got %d components: %w", len(k), ErrTypeMismatch)
		}
		return k[0], k[1], nil
	case []any:
		if len(k) != 2 {
			return 0, 0, fmt.Errorf("key must be a pair, got %d components: %w", len(k), ErrTypeMismatch)
		}
		i, err := keyComponent(k[0])
		if err != nil {
			return 0, 0, err
		}
		j, err := keyComponent(k[1])
		if err != nil {
			return 0, 0, err
		}
		return i, j, nil
	default:
		return 0, 0, fmt.Errorf("key of type %T is not a (row, col) pair: %w", key, ErrTypeMismatch)
	}
}

// keyComponent accepts Go integer types only; see scalar.Dimension.
func keyComponent(v any) (int, error) {
	i, err := scalar.Dimension(v)
	if err != nil {
		return 0, fmt.Errorf("key component: %w", ErrTypeMismatch)
	}
	return i, nil
}
