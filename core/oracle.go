package core

import (
	"context"
	"time"
)

// OraclePrice price row maintained by the oracle feed
type OraclePrice struct {
	ID            uint64    `sql:"PRIMARY_KEY" json:"id"`
	CoinContract  string    `sql:"size:13" json:"coin_contract"`
	CoinCode      string    `sql:"size:7" json:"coin_code"`
	CoinPrecision uint8     `json:"coin_precision"`
	Precision     uint8     `json:"precision"`
	AvgPrice      int64     `json:"avg_price"`
	LastUpdate    time.Time `json:"last_update"`
}

// Coin priced coin
func (p *OraclePrice) Coin() ExtendedSymbol {
	return ExtendedSymbol{
		Symbol:   NewSymbol(p.CoinCode, p.CoinPrecision),
		Contract: p.CoinContract,
	}
}

// IOracleFeed read-only price lookup
type IOracleFeed interface {
	// Price fails with ErrOracleNotFound if absent
	Price(ctx context.Context, id uint64) (*OraclePrice, error)
}
