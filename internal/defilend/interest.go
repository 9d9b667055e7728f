package defilend

import (
	"fmt"

	"defilend/core"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// AccruedInterest interest on principal over elapsed seconds
//
//	rate_fraction = rate * elapsed / SecondsPerYear
//	index_ratio   = reserve_index / position_index
//	accrued       = floor(principal * rate_fraction * index_ratio / 1e14)
//
// evaluated with a single floor at the end
func AccruedInterest(principal int64, rate, reserveIndex, positionIndex decimal.Decimal, elapsed int64) (int64, error) {
	if positionIndex.Sign() <= 0 {
		return 0, fmt.Errorf("position cumulative index %s: %w", positionIndex, core.ErrPreconditionViolation)
	}

	if elapsed <= 0 || principal == 0 {
		return 0, nil
	}

	p, err := Uint(principal)
	if err != nil {
		return 0, err
	}

	r, err := UintFromDecimal(rate)
	if err != nil {
		return 0, err
	}

	last, err := UintFromDecimal(reserveIndex)
	if err != nil {
		return 0, err
	}

	pos, err := UintFromDecimal(positionIndex)
	if err != nil {
		return 0, err
	}

	numerator, overflow := new(uint256.Int).MulOverflow(p, r)
	if !overflow {
		numerator, overflow = numerator.MulOverflow(numerator, uint256.NewInt(uint64(elapsed)))
	}

	if overflow {
		return 0, fmt.Errorf("accrue numerator: %w", core.ErrArithmeticOverflow)
	}

	denominator, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(uint64(SecondsPerYear)), pos)
	if !overflow {
		denominator, overflow = denominator.MulOverflow(denominator, RateScale)
	}

	if overflow {
		return 0, fmt.Errorf("accrue denominator: %w", core.ErrArithmeticOverflow)
	}

	return MulDiv(numerator, last, denominator)
}
