package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Position valued holding of an account
type Position struct {
	ReserveID         uint64          `json:"reserve_id"`
	Asset             ExtendedAsset   `json:"asset"`
	Value             decimal.Decimal `json:"value"`
	RiskWeightedValue decimal.Decimal `json:"risk_weighted_value"`
}

// Account health summary
type Account struct {
	Owner             string          `json:"owner"`
	Collaterals       []*Position     `json:"collaterals"`
	Loans             []*Position     `json:"loans"`
	CollateralValue   decimal.Decimal `json:"collateral_value"`
	RiskWeightedValue decimal.Decimal `json:"risk_weighted_value"`
	LoanValue         decimal.Decimal `json:"loan_value"`
	HealthFactor      decimal.Decimal `json:"health_factor"`
	Liquidatable      bool            `json:"liquidatable"`
}

// IAccountService health factor calculator
type IAccountService interface {
	Collaterals(ctx context.Context, owner string) ([]*Position, error)
	Loans(ctx context.Context, owner string) ([]*Position, error)
	// HealthFactor is zero when the account has no loans
	HealthFactor(ctx context.Context, owner string) (decimal.Decimal, error)
	Summary(ctx context.Context, owner string) (*Account, error)
}

// ICollateralService collateral guard
type ICollateralService interface {
	Unstake(ctx context.Context, authorizer, owner, code string) error
}
