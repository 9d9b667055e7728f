package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// IExchangeService converts between underlying and wrapped assets
type IExchangeService interface {
	Wrap(ctx context.Context, quantity Asset) (ExtendedAsset, error)
	WrapExtended(ctx context.Context, quantity ExtendedAsset) (ExtendedAsset, error)
	Unwrap(ctx context.Context, quantity Asset) (ExtendedAsset, error)
	GetAmountOut(ctx context.Context, quantity Asset, target Symbol) (Asset, error)
	IsBToken(ctx context.Context, code string) (bool, error)
	GetBToken(ctx context.Context, code string) (ExtendedSymbol, error)
	// ToUnderlying converts a wrapped balance at the reserve's current ratio
	ToUnderlying(ctx context.Context, reserve *Reserve, balance Asset) (ExtendedAsset, error)
}

// IValuationService values assets in the base value unit
type IValuationService interface {
	Value(ctx context.Context, amount ExtendedAsset, oracleID uint64) (decimal.Decimal, error)
}
