// SPDX-License-Identifier: MIT
// Package scalar_test contains unit tests for domain descriptors and
// runtime inspection.
package scalar_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/mytrix/scalar"
	"github.com/stretchr/testify/require"
)

// TestDescriptorConstants checks zero/one/tag for every supported domain.
func TestDescriptorConstants(t *testing.T) {
	require.Equal(t, scalar.Boolean, scalar.DescriptorOf[bool]().Kind())
	require.False(t, scalar.DescriptorOf[bool]().Zero())
	require.True(t, scalar.DescriptorOf[bool]().One())
	require.Equal(t, "bool", scalar.DescriptorOf[bool]().Tag())

	require.Equal(t, scalar.Integer, scalar.DescriptorOf[int]().Kind())
	require.Equal(t, 0, scalar.DescriptorOf[int]().Zero())
	require.Equal(t, 1, scalar.DescriptorOf[int]().One())
	require.Equal(t, "int", scalar.DescriptorOf[int]().Tag())

	require.Equal(t, scalar.Real, scalar.DescriptorOf[float64]().Kind())
	require.Equal(t, 0.0, scalar.DescriptorOf[float64]().Zero())
	require.Equal(t, 1.0, scalar.DescriptorOf[float64]().One())
	require.Equal(t, "float64", scalar.RealDomain.Tag())
}

// TestRequire covers supported, reserved and unknown kinds.
func TestRequire(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    scalar.Kind
		wantErr error
	}{
		{scalar.Boolean, nil},
		{scalar.Integer, nil},
		{scalar.Real, nil},
		{scalar.Rational, scalar.ErrNotImplemented},
		{scalar.Complex, scalar.ErrNotImplemented},
		{scalar.Invalid, scalar.ErrTypeMismatch},
		{scalar.Kind(42), scalar.ErrTypeMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := scalar.Require(tc.kind)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestParseKind accepts names and symbols, rejects junk.
func TestParseKind(t *testing.T) {
	k, err := scalar.ParseKind("Integer")
	require.NoError(t, err)
	require.Equal(t, scalar.Integer, k)

	k, err = scalar.ParseKind(" real ")
	require.NoError(t, err)
	require.Equal(t, scalar.Real, k)

	k, err = scalar.ParseKind("Q")
	require.NoError(t, err)
	require.Equal(t, scalar.Rational, k)
	require.True(t, k.Reserved())
	require.False(t, k.Supported())

	_, err = scalar.ParseKind("quaternion")
	require.ErrorIs(t, err, scalar.ErrTypeMismatch)
}

// TestKindOf exercises the closed runtime inspection.
func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    scalar.Kind
		wantErr error
	}{
		{"bool", true, scalar.Boolean, nil},
		{"int", 7, scalar.Integer, nil},
		{"float64", 7.5, scalar.Real, nil},
		{"rat", big.NewRat(1, 3), scalar.Rational, scalar.ErrNotImplemented},
		{"complex", complex(1, 2), scalar.Complex, scalar.ErrNotImplemented},
		{"string", "spam", scalar.Invalid, scalar.ErrNotImplemented},
		{"int64", int64(3), scalar.Invalid, scalar.ErrNotImplemented},
		{"nil", nil, scalar.Invalid, scalar.ErrNotImplemented},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			k, err := scalar.KindOf(tc.value)
			require.Equal(t, tc.want, k)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestCheckNoWidening verifies exact type-tag matching.
func TestCheckNoWidening(t *testing.T) {
	v, err := scalar.Check[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = scalar.Check[int](true)
	require.ErrorIs(t, err, scalar.ErrTypeMismatch)

	_, err = scalar.Check[float64](1)
	require.ErrorIs(t, err, scalar.ErrTypeMismatch)

	_, err = scalar.Check[bool](0)
	require.ErrorIs(t, err, scalar.ErrTypeMismatch)
	require.Contains(t, err.Error(), "int")
}

// TestDimension accepts integer kinds only.
func TestDimension(t *testing.T) {
	for _, v := range []any{2, int8(2), int16(2), int32(2), int64(2), uint8(2), uint16(2), uint32(2), uint(2), uint64(2)} {
		d, err := scalar.Dimension(v)
		require.NoError(t, err)
		require.Equal(t, 2, d)
	}
	for _, v := range []any{"spam", 2.0, true, nil} {
		_, err := scalar.Dimension(v)
		require.ErrorIs(t, err, scalar.ErrTypeMismatch)
	}
	_, err := scalar.Dimension(^uint64(0))
	require.ErrorIs(t, err, scalar.ErrInvalidDimensions)
}
