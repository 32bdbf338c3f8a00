// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Fix the scalar domain through the type parameter: a Dense[int] can only
//     ever hold int, so typed callers need no runtime tag check.
//   - Never alias: constructors copy caller rows, Data/Row/Col return copies.
//
// Complexity quicksheet:
//   - New/Zeros: O(r*c); At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mytrix/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over the scalar domain of T.
//   - r,c hold dimensions (rows, cols), both > 0 for every reachable value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T scalar.Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// newDense allocates an r×c matrix filled with the zero value of T.
// Callers MUST have validated the shape.
func newDense[T scalar.Element](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// New builds an m×n matrix from explicit data.
// MAIN DESCRIPTION:
//   - Direct constructor: the caller states the shape and supplies rows.
//
// Implementation:
//   - Stage 1: ValidateDimensions(m, n).
//   - Stage 2: data must hold exactly m rows of exactly n elements.
//   - Stage 3: copy into a fresh flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch.
//
// Notes:
//   - The result never shares storage with data.
func New[T scalar.Element](m, n int, data [][]T) (*Dense[T], error) {
	if err := ValidateDimensions(m, n); err != nil {
		return nil, matrixErrorf("New", err)
	}
	if len(data) != m {
		return nil, matrixErrorf("New", fmt.Errorf("got %d rows, want %d: %w", len(data), m, ErrDimensionMismatch))
	}
	if err := validateRectangular(data, n); err != nil {
		return nil, matrixErrorf("New", err)
	}

	return fromValidRows(m, n, data), nil
}

// fromValidRows copies already validated rows into a new Dense.
func fromValidRows[T scalar.Element](m, n int, rows [][]T) *Dense[T] {
	d := newDense[T](m, n)
	for i, row := range rows {
		copy(d.data[i*n:(i+1)*n], row)
	}
	return d
}

// Kind returns the scalar domain of the matrix.
func (m *Dense[T]) Kind() scalar.Kind { return scalar.KindFor[T]() }

// Descriptor returns the constant table of the matrix domain.
func (m *Dense[T]) Descriptor() scalar.Descriptor[T] { return scalar.DescriptorOf[T]() }

// Dims returns (rows, cols).
func (m *Dense[T]) Dims() (int, int) { return m.r, m.c }

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfBounds
// tagged with the calling method.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfBounds outside [0,Rows()) × [0,Cols()).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfBounds outside the shape; the matrix is then unchanged.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfBounds)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// Data returns the contents as m rows of n elements (deep copy).
func (m *Dense[T]) Data() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// CloneMatrix is Clone behind the Matrix variant.
func (m *Dense[T]) CloneMatrix() Matrix { return m.Clone() }

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ { // iterate over columns
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func (m *Dense[T]) sealed() {}
