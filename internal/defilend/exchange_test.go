package defilend

import (
	"testing"

	"defilend/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrapExample(t *testing.T) {
	out, err := WrapAmount(10_000, 100_000_000, 1_000_000)
	require.Nil(t, err)
	assert.Equal(t, int64(1_000_000), out)

	back, err := UnwrapAmount(out, 1_000_000, 100_000_000, decimal.Zero)
	require.Nil(t, err)
	assert.Equal(t, int64(10_000), back)
}

func TestWrapThenUnwrapNeverFavorsCaller(t *testing.T) {
	cases := []struct {
		quantity, supply, balance int64
	}{
		{1, 3, 7},
		{999_999, 123_456_789, 98_765},
		{7, 1_000_000_007, 999_999_937},
		{123_456_789_012, 9_223_372_036, 4_611_686_018},
	}

	for _, c := range cases {
		wrapped, err := WrapAmount(c.quantity, c.supply, c.balance)
		require.Nil(t, err)

		back, err := UnwrapAmount(wrapped, c.balance, c.supply, decimal.Zero)
		require.Nil(t, err)
		assert.LessOrEqual(t, back, c.quantity)
	}
}

func TestWrapWidensBeforeDivide(t *testing.T) {
	// quantity * supply overflows 64 bits while the result fits
	out, err := WrapAmount(4_000_000_000_000_000_000, 8, 16)
	require.Nil(t, err)
	assert.Equal(t, int64(2_000_000_000_000_000_000), out)
}

func TestWrapOverflowIsFatal(t *testing.T) {
	_, err := WrapAmount(4_000_000_000_000_000_000, 9_000_000_000_000_000_000, 1)
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)
}

func TestWrapZeroBalance(t *testing.T) {
	_, err := WrapAmount(10, 10, 0)
	assert.ErrorIs(t, err, core.ErrPreconditionViolation)
}

func TestUnwrapZeroSupply(t *testing.T) {
	_, err := UnwrapAmount(10, 10, 0, decimal.Zero)
	assert.ErrorIs(t, err, core.ErrPreconditionViolation)
}

func TestUnwrapLiquidityClamp(t *testing.T) {
	// 80% utilization keeps 800,000 of 1,000,000 as buffer
	ur := decimal.NewFromInt(80_000_000_000_000)

	out, err := UnwrapAmount(20_000_000, 1_000_000, 100_000_000, ur)
	require.Nil(t, err)
	assert.Equal(t, int64(200_000), out, "exactly at the buffer is allowed")

	out, err = UnwrapAmount(20_000_100, 1_000_000, 100_000_000, ur)
	require.Nil(t, err)
	assert.Equal(t, int64(0), out, "one unit past the buffer is clamped")
}

func TestUnwrapNeverBreachesBuffer(t *testing.T) {
	ur := decimal.NewFromInt(35_000_000_000_000)
	balance, supply := int64(7_777_777), int64(555_555_555)

	for q := int64(0); q <= supply; q += supply / 97 {
		out, err := UnwrapAmount(q, balance, supply, ur)
		require.Nil(t, err)

		if out == 0 {
			continue
		}

		protected, err := IsLiquidityProtected(out, balance, ur)
		require.Nil(t, err)
		assert.False(t, protected)
	}
}
