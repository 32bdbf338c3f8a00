// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mytrix/matrix"
	"github.com/katalvlaran/mytrix/scalar"
	"github.com/stretchr/testify/require"
)

// MustNew builds an m×n matrix from rows or fails the test.
func MustNew[T scalar.Element](t *testing.T, m, n int, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.New(m, n, rows)
	require.NoError(t, err)
	return d
}

// MustRows builds a matrix via FromRows or fails the test.
func MustRows[T scalar.Element](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return d
}

// requireAll asserts every cell of d equals want.
func requireAll[T scalar.Element](t *testing.T, d *matrix.Dense[T], want T) {
	t.Helper()
	r, c := d.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want, v, "cell (%d,%d)", i, j)
		}
	}
}

// anyRows lifts typed rows into the dynamic [][]any form.
func anyRows[T any](rows [][]T) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = v
		}
	}
	return out
}
