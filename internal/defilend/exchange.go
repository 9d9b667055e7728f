package defilend

import (
	"fmt"

	"defilend/core"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// WrapAmount wrapped amount minted for quantity
// out = floor(quantity * supply / practical_balance)
func WrapAmount(quantity, supply, practicalBalance int64) (int64, error) {
	if practicalBalance <= 0 {
		return 0, fmt.Errorf("practical balance %d: %w", practicalBalance, core.ErrPreconditionViolation)
	}

	q, err := Uint(quantity)
	if err != nil {
		return 0, err
	}

	s, err := Uint(supply)
	if err != nil {
		return 0, err
	}

	return MulDiv(q, s, uint256.NewInt(uint64(practicalBalance)))
}

// RedeemAmount underlying amount of quantity wrapped tokens at the current ratio
// out = floor(quantity * practical_balance / supply)
func RedeemAmount(quantity, practicalBalance, supply int64) (int64, error) {
	if supply <= 0 {
		return 0, fmt.Errorf("wrapped supply %d: %w", supply, core.ErrPreconditionViolation)
	}

	q, err := Uint(quantity)
	if err != nil {
		return 0, err
	}

	b, err := Uint(practicalBalance)
	if err != nil {
		return 0, err
	}

	return MulDiv(q, b, uint256.NewInt(uint64(supply)))
}

// UnwrapAmount redeem amount with the liquidity protection clamp applied:
// zero when practical_balance < out + utilization_rate * practical_balance / 1e14
func UnwrapAmount(quantity, practicalBalance, supply int64, utilizationRate decimal.Decimal) (int64, error) {
	out, err := RedeemAmount(quantity, practicalBalance, supply)
	if err != nil {
		return 0, err
	}

	protected, err := IsLiquidityProtected(out, practicalBalance, utilizationRate)
	if err != nil {
		return 0, err
	}

	if protected {
		return 0, nil
	}

	return out, nil
}

// IsLiquidityProtected reports whether drawing out would dip into the buffer
// implied by the current utilization
func IsLiquidityProtected(out, practicalBalance int64, utilizationRate decimal.Decimal) (bool, error) {
	ur, err := UintFromDecimal(utilizationRate)
	if err != nil {
		return false, err
	}

	b, err := Uint(practicalBalance)
	if err != nil {
		return false, err
	}

	o, err := Uint(out)
	if err != nil {
		return false, err
	}

	buffer, overflow := new(uint256.Int).MulOverflow(ur, b)
	if overflow {
		return false, fmt.Errorf("utilization buffer: %w", core.ErrArithmeticOverflow)
	}

	buffer.Div(buffer, RateScale)
	required, overflow := new(uint256.Int).AddOverflow(o, buffer)
	if overflow {
		return false, fmt.Errorf("utilization buffer: %w", core.ErrArithmeticOverflow)
	}

	return b.Lt(required), nil
}
