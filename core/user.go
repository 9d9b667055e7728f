package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserConfig collateral switch of a deposit
type UserConfig struct {
	Owner           string `sql:"size:13;PRIMARY_KEY" json:"owner"`
	ReserveID       uint64 `sql:"PRIMARY_KEY" json:"reserve_id"`
	UseAsCollateral bool   `json:"use_as_collateral"`
}

// UserReserve open loan position
type UserReserve struct {
	Owner     string `sql:"size:13;PRIMARY_KEY" json:"owner"`
	ReserveID uint64 `sql:"PRIMARY_KEY" json:"reserve_id"`
	// principal in underlying units
	PrincipalBorrowBalance int64 `json:"principal_borrow_balance"`
	// snapshot of the reserve index at last touch, uint128 value
	LastVariableBorrowCumulativeIndex decimal.Decimal `sql:"type:decimal(40,0)" json:"last_variable_borrow_cumulative_index"`
	StableBorrowRate                  decimal.Decimal `sql:"type:decimal(40,0)" json:"stable_borrow_rate"`
	LastUpdateTime                    time.Time       `json:"last_update_time"`
}

// IUserConfigStore user config store interface
type IUserConfigStore interface {
	FindByOwner(ctx context.Context, owner string) ([]*UserConfig, error)
}

// ILoanStore user reserve store interface
type ILoanStore interface {
	FindByOwner(ctx context.Context, owner string) ([]*UserReserve, error)
}
