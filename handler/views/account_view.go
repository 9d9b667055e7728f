package views

import (
	"defilend/core"
	"defilend/pkg/number"

	"github.com/shopspring/decimal"
)

// Position position view
type Position struct {
	ReserveID         uint64          `json:"reserve_id"`
	Quantity          string          `json:"quantity"`
	Contract          string          `json:"contract"`
	Value             decimal.Decimal `json:"value"`
	RiskWeightedValue decimal.Decimal `json:"risk_weighted_value"`
}

// Account account view
type Account struct {
	Owner             string          `json:"owner"`
	Collaterals       []Position      `json:"collaterals"`
	Loans             []Position      `json:"loans"`
	CollateralValue   decimal.Decimal `json:"collateral_value"`
	RiskWeightedValue decimal.Decimal `json:"risk_weighted_value"`
	LoanValue         decimal.Decimal `json:"loan_value"`
	HealthFactor      decimal.Decimal `json:"health_factor"`
	Liquidatable      bool            `json:"liquidatable"`
}

// PositionViews render positions
func PositionViews(positions []*core.Position) []Position {
	views := make([]Position, len(positions))
	for idx, p := range positions {
		views[idx] = Position{
			ReserveID:         p.ReserveID,
			Quantity:          p.Asset.Quantity.String(),
			Contract:          p.Asset.Contract,
			Value:             p.Value,
			RiskWeightedValue: p.RiskWeightedValue,
		}
	}

	return views
}

// HealthFactorPrecision decimals of a rendered health factor, rounded down
const HealthFactorPrecision = 8

// AccountView render account
func AccountView(account *core.Account) Account {
	return Account{
		Owner:             account.Owner,
		Collaterals:       PositionViews(account.Collaterals),
		Loans:             PositionViews(account.Loans),
		CollateralValue:   account.CollateralValue,
		RiskWeightedValue: account.RiskWeightedValue,
		LoanValue:         account.LoanValue,
		HealthFactor:      number.Floor(account.HealthFactor, HealthFactorPrecision),
		Liquidatable:      account.Liquidatable,
	}
}
