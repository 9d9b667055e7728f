package defilend

import (
	"context"
	"fmt"
	"math"
	"time"

	"defilend/core"
	"defilend/internal/defilend"
)

// Accrue interest on the loan position since its last update
// accrued = floor(principal * rate * elapsed / SecondsPerYear * reserve_index / position_index / 1e14)
func Accrue(ctx context.Context, position *core.UserReserve, reserve *core.Reserve, now time.Time) (int64, error) {
	if position.ReserveID != reserve.ID {
		return 0, fmt.Errorf("position of reserve %d valued against reserve %d: %w", position.ReserveID, reserve.ID, core.ErrPreconditionViolation)
	}

	elapsed := now.Unix() - position.LastUpdateTime.Unix()

	return defilend.AccruedInterest(
		position.PrincipalBorrowBalance,
		reserve.CurrentVariableBorrowRate,
		reserve.LastVariableBorrowCumulativeIndex,
		position.LastVariableBorrowCumulativeIndex,
		elapsed,
	)
}

// BorrowBalance principal plus accrued interest in the reserve's underlying symbol
func BorrowBalance(ctx context.Context, position *core.UserReserve, reserve *core.Reserve, now time.Time) (core.ExtendedAsset, error) {
	accrued, err := Accrue(ctx, position, reserve, now)
	if err != nil {
		return core.ExtendedAsset{}, err
	}

	principal := position.PrincipalBorrowBalance
	if accrued > math.MaxInt64-principal {
		return core.ExtendedAsset{}, fmt.Errorf("borrow balance of reserve %d: %w", reserve.ID, core.ErrArithmeticOverflow)
	}

	total := core.Asset{
		Amount: principal + accrued,
		Symbol: reserve.Symbol(),
	}

	return total.Extended(reserve.Contract), nil
}
