package defilend

import (
	"context"
	"math"
	"testing"
	"time"

	"defilend/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoan(principal int64, index int64, at time.Time) (*core.UserReserve, *core.Reserve) {
	reserve := &core.Reserve{
		ID:                                1,
		Contract:                          "tethertether",
		SymbolCode:                        "USDT",
		SymbolPrecision:                   4,
		CurrentVariableBorrowRate:         decimal.NewFromInt(5_000_000_000_000),
		LastVariableBorrowCumulativeIndex: decimal.NewFromInt(index),
	}

	position := &core.UserReserve{
		Owner:                             "alice",
		ReserveID:                         1,
		PrincipalBorrowBalance:            principal,
		LastVariableBorrowCumulativeIndex: decimal.NewFromInt(100_000_000_000_000),
		LastUpdateTime:                    at,
	}

	return position, reserve
}

func TestAccrue(t *testing.T) {
	ctx := context.Background()
	at := time.Unix(1_600_000_000, 0)
	position, reserve := newLoan(2_000_000, 100_000_000_000_000, at)

	accrued, err := Accrue(ctx, position, reserve, at.Add(365*24*time.Hour))
	require.Nil(t, err)
	assert.Equal(t, int64(100_000), accrued)

	accrued, err = Accrue(ctx, position, reserve, at)
	require.Nil(t, err)
	assert.Equal(t, int64(0), accrued)
}

func TestAccrueZeroElapsedIgnoresIndexRatio(t *testing.T) {
	at := time.Unix(1_600_000_000, 0)
	position, reserve := newLoan(2_000_000, 250_000_000_000_000, at)

	accrued, err := Accrue(context.Background(), position, reserve, at)
	require.Nil(t, err)
	assert.Equal(t, int64(0), accrued)
}

func TestAccrueMismatchedReserve(t *testing.T) {
	at := time.Unix(1_600_000_000, 0)
	position, reserve := newLoan(2_000_000, 100_000_000_000_000, at)
	reserve.ID = 2

	_, err := Accrue(context.Background(), position, reserve, at.Add(time.Hour))
	assert.ErrorIs(t, err, core.ErrPreconditionViolation)
}

func TestBorrowBalance(t *testing.T) {
	at := time.Unix(1_600_000_000, 0)
	position, reserve := newLoan(2_000_000, 100_000_000_000_000, at)

	total, err := BorrowBalance(context.Background(), position, reserve, at.Add(365*24*time.Hour))
	require.Nil(t, err)
	assert.Equal(t, "210.0000 USDT@tethertether", total.String())
}

func TestBorrowBalanceOverflow(t *testing.T) {
	at := time.Unix(1_600_000_000, 0)
	position, reserve := newLoan(math.MaxInt64-10, 100_000_000_000_000, at)

	_, err := BorrowBalance(context.Background(), position, reserve, at.Add(365*24*time.Hour))
	assert.ErrorIs(t, err, core.ErrArithmeticOverflow)
}
