package core

import (
	"context"
)

// TokenStat currency stats of a token ledger
type TokenStat struct {
	Contract  string `sql:"size:13;PRIMARY_KEY" json:"contract"`
	Code      string `sql:"size:7;PRIMARY_KEY" json:"code"`
	Precision uint8  `json:"precision"`
	Supply    int64  `json:"supply"`
	MaxSupply int64  `json:"max_supply"`
	Issuer    string `sql:"size:13" json:"issuer"`
}

// Symbol token symbol
func (s *TokenStat) Symbol() Symbol {
	return NewSymbol(s.Code, s.Precision)
}

// SupplyAsset current supply
func (s *TokenStat) SupplyAsset() Asset {
	return Asset{Amount: s.Supply, Symbol: s.Symbol()}
}

// TokenBalance account balance of a token
type TokenBalance struct {
	Contract  string `sql:"size:13;PRIMARY_KEY" json:"contract"`
	Owner     string `sql:"size:13;PRIMARY_KEY" json:"owner"`
	Code      string `sql:"size:7;PRIMARY_KEY" json:"code"`
	Precision uint8  `json:"precision"`
	Balance   int64  `json:"balance"`
}

// Asset balance asset
func (b *TokenBalance) Asset() Asset {
	return Asset{Amount: b.Balance, Symbol: NewSymbol(b.Code, b.Precision)}
}

// ISupplyLedger total supply and balance lookup of a token ledger
type ISupplyLedger interface {
	// TotalSupply fails with ErrSupplyNotFound if the ledger has no such token
	TotalSupply(ctx context.Context, contract, code string) (Asset, error)
	// Balance returns a zero asset when the owner holds no row
	Balance(ctx context.Context, contract, code, owner string) (Asset, error)
}
