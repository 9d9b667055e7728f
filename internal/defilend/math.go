package defilend

import (
	"fmt"
	"math"

	"defilend/core"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	// RateScale fixed point scale of rate fields
	RateScale = uint256.NewInt(100_000_000_000_000)
	// SecondsPerYear seconds per year
	SecondsPerYear int64 = 31_536_000
	// BasisPoints basis points scale of ltv and liquidation parameters
	BasisPoints = decimal.NewFromInt(10_000)

	maxInt64 = uint256.NewInt(math.MaxInt64)
)

// Uint converts a non-negative amount to the widened type
func Uint(amount int64) (*uint256.Int, error) {
	if amount < 0 {
		return nil, fmt.Errorf("negative amount %d: %w", amount, core.ErrPreconditionViolation)
	}

	return uint256.NewInt(uint64(amount)), nil
}

// UintFromDecimal converts an integral uint128 table field
func UintFromDecimal(d decimal.Decimal) (*uint256.Int, error) {
	if d.IsNegative() {
		return nil, fmt.Errorf("negative value %s: %w", d, core.ErrPreconditionViolation)
	}

	v, overflow := uint256.FromBig(d.BigInt())
	if overflow {
		return nil, fmt.Errorf("value %s: %w", d, core.ErrArithmeticOverflow)
	}

	return v, nil
}

// Narrow narrows back to the native amount width
func Narrow(v *uint256.Int) (int64, error) {
	if v.Gt(maxInt64) {
		return 0, fmt.Errorf("%s exceeds amount width: %w", v.Dec(), core.ErrArithmeticOverflow)
	}

	return int64(v.Uint64()), nil
}

// MulDiv floor(x * y / d) narrowed to int64
func MulDiv(x, y, d *uint256.Int) (int64, error) {
	if d.IsZero() {
		return 0, fmt.Errorf("division by zero: %w", core.ErrPreconditionViolation)
	}

	v, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return 0, fmt.Errorf("mul div: %w", core.ErrArithmeticOverflow)
	}

	return Narrow(v)
}
