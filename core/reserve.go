package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Reserve lending pool of one underlying asset
type Reserve struct {
	ID       uint64 `sql:"PRIMARY_KEY" json:"id"`
	Contract string `sql:"size:13;index:idx_reserves_underlying" json:"contract"`
	// underlying symbol
	SymbolCode      string `sql:"size:7;index:idx_reserves_underlying" json:"sym_code"`
	SymbolPrecision uint8  `json:"sym_precision"`
	// wrapped symbol, one reserve per code
	BSymbolCode      string `sql:"size:7;unique_index:idx_reserves_bsym" json:"bsym_code"`
	BSymbolPrecision uint8  `json:"bsym_precision"`

	// cumulative indices, uint128 values
	LastLiquidityCumulativeIndex      decimal.Decimal `sql:"type:decimal(40,0)" json:"last_liquidity_cumulative_index"`
	LastVariableBorrowCumulativeIndex decimal.Decimal `sql:"type:decimal(40,0)" json:"last_variable_borrow_cumulative_index"`

	// amounts in underlying units
	PracticalBalance     int64 `json:"practical_balance"`
	TotalBorrowsStable   int64 `json:"total_borrows_stable"`
	TotalBorrowsVariable int64 `json:"total_borrows_variable"`
	MinimumBorrows       int64 `json:"minimum_borrows"`
	MaximumBorrows       int64 `json:"maximum_borrows"`
	MinimumDeposit       int64 `json:"minimum_deposit"`
	MaximumDeposit       int64 `json:"maximum_deposit"`
	MaximumTotalDeposit  int64 `json:"maximum_total_deposit"`
	ReservedBalance      int64 `json:"reserved_balance"`

	// rates, fixed point scaled by 1e14
	OverallBorrowRate          decimal.Decimal `sql:"type:decimal(40,0)" json:"overall_borrow_rate"`
	CurrentLiquidityRate       decimal.Decimal `sql:"type:decimal(40,0)" json:"current_liquidity_rate"`
	CurrentVariableBorrowRate  decimal.Decimal `sql:"type:decimal(40,0)" json:"current_variable_borrow_rate"`
	CurrentStableBorrowRate    decimal.Decimal `sql:"type:decimal(40,0)" json:"current_stable_borrow_rate"`
	CurrentAvgStableBorrowRate decimal.Decimal `sql:"type:decimal(40,0)" json:"current_avg_stable_borrow_rate"`
	ReserveFactor              decimal.Decimal `sql:"type:decimal(40,0)" json:"reserve_factor"`
	UtilizationRate            decimal.Decimal `sql:"type:decimal(40,0)" json:"utilization_rate"`
	OptimalUtilizationRate     decimal.Decimal `sql:"type:decimal(40,0)" json:"optimal_utilization_rate"`
	BaseVariableBorrowRate     decimal.Decimal `sql:"type:decimal(40,0)" json:"base_variable_borrow_rate"`
	VariableRateSlope1         decimal.Decimal `sql:"type:decimal(40,0)" json:"variable_rate_slope1"`
	VariableRateSlope2         decimal.Decimal `sql:"type:decimal(40,0)" json:"variable_rate_slope2"`
	BaseStableBorrowRate       decimal.Decimal `sql:"type:decimal(40,0)" json:"base_stable_borrow_rate"`
	StableRateSlope1           decimal.Decimal `sql:"type:decimal(40,0)" json:"stable_rate_slope1"`
	StableRateSlope2           decimal.Decimal `sql:"type:decimal(40,0)" json:"stable_rate_slope2"`

	// basis points
	BaseLTVAsCollateral  uint64 `json:"base_ltv_as_collateral"`
	LiquidationThreshold uint64 `json:"liquidation_threshold"`
	LiquidationForfeit   uint64 `json:"liquidation_forfeit"`
	LiquidationBonus     uint64 `json:"liquidation_bonus"`

	BorrowingEnabled          bool      `json:"borrowing_enabled"`
	UsageAsCollateralEnabled  bool      `json:"usage_as_collateral_enabled"`
	IsStableBorrowRateEnabled bool      `json:"is_stable_borrow_rate_enabled"`
	IsActive                  bool      `json:"is_active"`
	IsFreezed                 bool      `json:"is_freezed"`
	OraclePriceID             uint64    `json:"oracle_price_id"`
	LastUpdateTime            time.Time `json:"last_update_time"`
}

// Symbol underlying symbol
func (r *Reserve) Symbol() Symbol {
	return NewSymbol(r.SymbolCode, r.SymbolPrecision)
}

// BSymbol wrapped symbol
func (r *Reserve) BSymbol() Symbol {
	return NewSymbol(r.BSymbolCode, r.BSymbolPrecision)
}

// Underlying underlying symbol with its issuing ledger
func (r *Reserve) Underlying() ExtendedSymbol {
	return ExtendedSymbol{Symbol: r.Symbol(), Contract: r.Contract}
}

// IReserveStore reserve table of the lending protocol
type IReserveStore interface {
	All(ctx context.Context) ([]*Reserve, error)
}

// IReserveDirectory read-only catalog of reserves taken from one snapshot
type IReserveDirectory interface {
	ByID(id uint64) (*Reserve, error)
	// ByUnderlying first reserve in directory order; ambiguous when two
	// issuers share a symbol, use ByExtendedUnderlying to disambiguate
	ByUnderlying(symbol Symbol) (*Reserve, error)
	ByExtendedUnderlying(symbol ExtendedSymbol) (*Reserve, error)
	ByWrapped(symbol Symbol) (*Reserve, error)
	ByWrappedCode(code string) (*Reserve, error)
	All() []*Reserve
}

// IReserveService reserve service interface
type IReserveService interface {
	Directory(ctx context.Context) (IReserveDirectory, error)
}
