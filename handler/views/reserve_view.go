package views

import (
	"time"

	"defilend/core"
	"defilend/internal/defilend"

	"github.com/shopspring/decimal"
)

// Reserve reserve view, rates as fractions and amounts as assets
type Reserve struct {
	ID                   uint64          `json:"id"`
	Contract             string          `json:"contract"`
	Symbol               string          `json:"sym"`
	BSymbol              string          `json:"bsym"`
	PracticalBalance     string          `json:"practical_balance"`
	TotalBorrowsVariable string          `json:"total_borrows_variable"`
	TotalBorrowsStable   string          `json:"total_borrows_stable"`
	UtilizationRate      decimal.Decimal `json:"utilization_rate"`
	LiquidityRate        decimal.Decimal `json:"liquidity_rate"`
	VariableBorrowRate   decimal.Decimal `json:"variable_borrow_rate"`
	StableBorrowRate     decimal.Decimal `json:"stable_borrow_rate"`
	BaseLTVAsCollateral  decimal.Decimal `json:"base_ltv_as_collateral"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
	LiquidationBonus     decimal.Decimal `json:"liquidation_bonus"`
	BorrowingEnabled     bool            `json:"borrowing_enabled"`
	CollateralEnabled    bool            `json:"usage_as_collateral_enabled"`
	IsActive             bool            `json:"is_active"`
	IsFreezed            bool            `json:"is_freezed"`
	OraclePriceID        uint64          `json:"oracle_price_id"`
	LastUpdateTime       time.Time       `json:"last_update_time"`
}

var rateScale = decimal.New(1, 14)

// ReserveView render reserve
func ReserveView(r *core.Reserve) Reserve {
	amount := func(v int64) string {
		return core.Asset{Amount: v, Symbol: r.Symbol()}.String()
	}

	bps := func(v uint64) decimal.Decimal {
		return decimal.NewFromInt(int64(v)).Div(defilend.BasisPoints)
	}

	return Reserve{
		ID:                   r.ID,
		Contract:             r.Contract,
		Symbol:               r.Symbol().String(),
		BSymbol:              r.BSymbol().String(),
		PracticalBalance:     amount(r.PracticalBalance),
		TotalBorrowsVariable: amount(r.TotalBorrowsVariable),
		TotalBorrowsStable:   amount(r.TotalBorrowsStable),
		UtilizationRate:      r.UtilizationRate.Div(rateScale),
		LiquidityRate:        r.CurrentLiquidityRate.Div(rateScale),
		VariableBorrowRate:   r.CurrentVariableBorrowRate.Div(rateScale),
		StableBorrowRate:     r.CurrentStableBorrowRate.Div(rateScale),
		BaseLTVAsCollateral:  bps(r.BaseLTVAsCollateral),
		LiquidationThreshold: bps(r.LiquidationThreshold),
		LiquidationBonus:     bps(r.LiquidationBonus),
		BorrowingEnabled:     r.BorrowingEnabled,
		CollateralEnabled:    r.UsageAsCollateralEnabled,
		IsActive:             r.IsActive,
		IsFreezed:            r.IsFreezed,
		OraclePriceID:        r.OraclePriceID,
		LastUpdateTime:       r.LastUpdateTime,
	}
}

// ReserveViews render reserves
func ReserveViews(reserves []*core.Reserve) []Reserve {
	views := make([]Reserve, len(reserves))
	for idx, r := range reserves {
		views[idx] = ReserveView(r)
	}

	return views
}
