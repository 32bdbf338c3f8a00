// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for dense vectors.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/mytrix/scalar"
	"github.com/katalvlaran/mytrix/vector"
	"github.com/stretchr/testify/require"
)

// TestNewStoresShapeAndData covers the two-field constructor.
func TestNewStoresShapeAndData(t *testing.T) {
	data := []int{1, 2, 3}
	v, err := vector.New(3, data)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, scalar.Integer, v.Kind())
	require.Equal(t, []int{1, 2, 3}, v.Data())

	data[0] = 100 // no aliasing
	x, _ := v.At(0)
	require.Equal(t, 1, x)

	_, err = vector.New(0, []bool{})
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)
	_, err = vector.New(2, []bool{true})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestCheckLength separates type and value errors.
func TestCheckLength(t *testing.T) {
	n, err := vector.CheckLength(uint16(4))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = vector.CheckLength("spam")
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = vector.CheckLength(0)
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)
}

// TestFactories covers Zeros/Ones/Basis and kind-driven variants.
func TestFactories(t *testing.T) {
	z, err := vector.Zeros[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, z.Data())

	o, err := vector.Ones[bool](2)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, o.Data())

	e1, err := vector.Basis[int](3, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, e1.Data())

	_, err = vector.Basis[int](3, 3)
	require.ErrorIs(t, err, vector.ErrOutOfBounds)
	_, err = vector.Zeros[int](0)
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)

	zv, err := vector.ZerosOf(scalar.Integer, 2)
	require.NoError(t, err)
	require.Equal(t, scalar.Integer, zv.Kind())
	ov, err := vector.OnesOf(scalar.Real, 2)
	require.NoError(t, err)
	want, _ := vector.FromSlice([]float64{1, 1})
	require.True(t, ov.Equal(want))

	for _, k := range []scalar.Kind{scalar.Rational, scalar.Complex} {
		_, err = vector.ZerosOf(k, 2)
		require.ErrorIs(t, err, vector.ErrNotImplemented)
		_, err = vector.OnesOf(k, 2)
		require.ErrorIs(t, err, vector.ErrNotImplemented)
		_, err = vector.FromSliceOf(k, []any{1})
		require.ErrorIs(t, err, vector.ErrNotImplemented)
	}
}

// TestInfer mirrors matrix inference.
func TestInfer(t *testing.T) {
	v, err := vector.Infer([]any{true, false})
	require.NoError(t, err)
	require.Equal(t, scalar.Boolean, v.Kind())

	v, err = vector.Infer([]any{1.5, 2.5})
	require.NoError(t, err)
	require.Equal(t, scalar.Real, v.Kind())

	_, err = vector.Infer([]any{1, 2.0})
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = vector.Infer([]any{"x"})
	require.ErrorIs(t, err, vector.ErrNotImplemented)
	_, err = vector.Infer(nil)
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)

	_, err = vector.FromSliceOf(scalar.Integer, []any{1, true})
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
}

// TestAccess covers typed and dynamic access.
func TestAccess(t *testing.T) {
	v, _ := vector.Zeros[int](3)

	require.NoError(t, v.Set(2, 9))
	x, err := v.Get(int64(2))
	require.NoError(t, err)
	require.Equal(t, 9, x)

	for _, i := range []int{-1, 3} {
		_, err = v.At(i)
		require.ErrorIs(t, err, vector.ErrOutOfBounds)
		require.ErrorIs(t, v.Set(i, 1), vector.ErrOutOfBounds)
		require.ErrorIs(t, v.SetAny(i, 1), vector.ErrOutOfBounds)
	}

	require.ErrorIs(t, v.SetAny(0, 1.0), vector.ErrTypeMismatch)
	require.ErrorIs(t, v.SetAny("0", 1), vector.ErrTypeMismatch)
	_, err = v.Get(0.0)
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	require.Equal(t, []int{0, 0, 9}, v.Data())

	require.Equal(t, "[0, 0, 9]", v.String())
}

// TestEquality mirrors matrix structural and element-wise equality.
func TestEquality(t *testing.T) {
	a, _ := vector.FromSlice([]int{1, 2, 3})
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	require.NoError(t, b.Set(1, 20))
	require.False(t, a.Equal(b))

	eq, err := a.ElemEqual(b)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, eq.Data())

	eq, err = a.ElemEqual(3)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true}, eq.Data())

	bz, _ := vector.Zeros[bool](3)
	iz, _ := vector.Zeros[int](3)
	require.False(t, iz.Equal(bz))
	require.False(t, iz.Equal(nil))

	_, err = a.ElemEqual(bz)
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	short, _ := vector.Zeros[int](2)
	_, err = a.ElemEqual(short)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = a.ElemEqual("spam")
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = a.ElemEqual((*vector.IntegerVector)(nil))
	require.ErrorIs(t, err, vector.ErrNilVector)

	c := a.CloneVector()
	require.True(t, c.Equal(a))
}
