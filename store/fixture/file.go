package fixture

import (
	"fmt"
	"os"
	"time"

	"defilend/core"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File yaml layout of the replicated ledger tables
type File struct {
	Reserves    []Reserve    `yaml:"reserves"`
	Stats       []Stat       `yaml:"stats"`
	Balances    []Balance    `yaml:"balances"`
	Prices      []Price      `yaml:"prices"`
	UserConfigs []UserConfig `yaml:"userconfigs"`
	Loans       []Loan       `yaml:"loans"`
}

// Reserve reserve row, symbols as "4,USDT" and uint128 fields as decimal strings
type Reserve struct {
	ID                                uint64 `yaml:"id"`
	Contract                          string `yaml:"contract"`
	Symbol                            string `yaml:"sym"`
	BSymbol                           string `yaml:"bsym"`
	PracticalBalance                  int64  `yaml:"practical_balance"`
	TotalBorrowsVariable              int64  `yaml:"total_borrows_variable"`
	TotalBorrowsStable                int64  `yaml:"total_borrows_stable"`
	LastLiquidityCumulativeIndex      string `yaml:"last_liquidity_cumulative_index"`
	LastVariableBorrowCumulativeIndex string `yaml:"last_variable_borrow_cumulative_index"`
	CurrentLiquidityRate              string `yaml:"current_liquidity_rate"`
	CurrentVariableBorrowRate         string `yaml:"current_variable_borrow_rate"`
	CurrentStableBorrowRate           string `yaml:"current_stable_borrow_rate"`
	UtilizationRate                   string `yaml:"utilization_rate"`
	BaseLTVAsCollateral               uint64 `yaml:"base_ltv_as_collateral"`
	LiquidationThreshold              uint64 `yaml:"liquidation_threshold"`
	LiquidationBonus                  uint64 `yaml:"liquidation_bonus"`
	BorrowingEnabled                  bool   `yaml:"borrowing_enabled"`
	UsageAsCollateralEnabled          bool   `yaml:"usage_as_collateral_enabled"`
	IsActive                          bool   `yaml:"is_active"`
	OraclePriceID                     uint64 `yaml:"oracle_price_id"`
	LastUpdateTime                    int64  `yaml:"last_update_time"`
}

// Stat token stat row, supply as "100.000000 BUSDT"
type Stat struct {
	Contract string `yaml:"contract"`
	Supply   string `yaml:"supply"`
	Issuer   string `yaml:"issuer"`
}

// Balance token account row
type Balance struct {
	Contract string `yaml:"contract"`
	Owner    string `yaml:"owner"`
	Balance  string `yaml:"balance"`
}

// Price oracle row
type Price struct {
	ID         uint64 `yaml:"id"`
	Contract   string `yaml:"contract"`
	Coin       string `yaml:"coin"`
	Precision  uint8  `yaml:"precision"`
	AvgPrice   int64  `yaml:"avg_price"`
	LastUpdate int64  `yaml:"last_update"`
}

// UserConfig collateral switch row
type UserConfig struct {
	Owner           string `yaml:"owner"`
	ReserveID       uint64 `yaml:"reserve_id"`
	UseAsCollateral bool   `yaml:"use_as_collateral"`
}

// Loan user reserve row
type Loan struct {
	Owner                             string `yaml:"owner"`
	ReserveID                         uint64 `yaml:"reserve_id"`
	Principal                         int64  `yaml:"principal"`
	LastVariableBorrowCumulativeIndex string `yaml:"last_variable_borrow_cumulative_index"`
	StableBorrowRate                  string `yaml:"stable_borrow_rate"`
	LastUpdateTime                    int64  `yaml:"last_update_time"`
}

// Load load fixture file from path
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}

	return Decode(data)
}

// Decode build store from yaml document
func Decode(data []byte) (*Store, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	s := New()

	for _, row := range f.Reserves {
		r, err := row.reserve()
		if err != nil {
			return nil, fmt.Errorf("reserve %d: %w", row.ID, err)
		}
		s.AddReserve(r)
	}

	for _, row := range f.Stats {
		supply, err := core.ParseAsset(row.Supply)
		if err != nil {
			return nil, err
		}
		s.SetStat(&core.TokenStat{
			Contract:  row.Contract,
			Code:      supply.Symbol.Code,
			Precision: supply.Symbol.Precision,
			Supply:    supply.Amount,
			Issuer:    row.Issuer,
		})
	}

	for _, row := range f.Balances {
		balance, err := core.ParseAsset(row.Balance)
		if err != nil {
			return nil, err
		}
		s.SetBalance(row.Contract, row.Owner, balance)
	}

	for _, row := range f.Prices {
		coin, err := core.ParseSymbol(row.Coin)
		if err != nil {
			return nil, fmt.Errorf("price %d: %w", row.ID, err)
		}
		s.SetPrice(&core.OraclePrice{
			ID:            row.ID,
			CoinContract:  row.Contract,
			CoinCode:      coin.Code,
			CoinPrecision: coin.Precision,
			Precision:     row.Precision,
			AvgPrice:      row.AvgPrice,
			LastUpdate:    unix(row.LastUpdate),
		})
	}

	for _, row := range f.UserConfigs {
		s.AddUserConfig(&core.UserConfig{
			Owner:           row.Owner,
			ReserveID:       row.ReserveID,
			UseAsCollateral: row.UseAsCollateral,
		})
	}

	for _, row := range f.Loans {
		index, err := parseUint128(row.LastVariableBorrowCumulativeIndex)
		if err != nil {
			return nil, fmt.Errorf("loan %s/%d: %w", row.Owner, row.ReserveID, err)
		}
		rate, err := parseUint128(row.StableBorrowRate)
		if err != nil {
			return nil, fmt.Errorf("loan %s/%d: %w", row.Owner, row.ReserveID, err)
		}
		s.AddLoan(&core.UserReserve{
			Owner:                             row.Owner,
			ReserveID:                         row.ReserveID,
			PrincipalBorrowBalance:            row.Principal,
			LastVariableBorrowCumulativeIndex: index,
			StableBorrowRate:                  rate,
			LastUpdateTime:                    unix(row.LastUpdateTime),
		})
	}

	return s, nil
}

func (row Reserve) reserve() (*core.Reserve, error) {
	sym, err := core.ParseSymbol(row.Symbol)
	if err != nil {
		return nil, err
	}

	bsym, err := core.ParseSymbol(row.BSymbol)
	if err != nil {
		return nil, err
	}

	r := &core.Reserve{
		ID:                       row.ID,
		Contract:                 row.Contract,
		SymbolCode:               sym.Code,
		SymbolPrecision:          sym.Precision,
		BSymbolCode:              bsym.Code,
		BSymbolPrecision:         bsym.Precision,
		PracticalBalance:         row.PracticalBalance,
		TotalBorrowsVariable:     row.TotalBorrowsVariable,
		TotalBorrowsStable:       row.TotalBorrowsStable,
		BaseLTVAsCollateral:      row.BaseLTVAsCollateral,
		LiquidationThreshold:     row.LiquidationThreshold,
		LiquidationBonus:         row.LiquidationBonus,
		BorrowingEnabled:         row.BorrowingEnabled,
		UsageAsCollateralEnabled: row.UsageAsCollateralEnabled,
		IsActive:                 row.IsActive,
		OraclePriceID:            row.OraclePriceID,
		LastUpdateTime:           unix(row.LastUpdateTime),
	}

	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&r.LastLiquidityCumulativeIndex, row.LastLiquidityCumulativeIndex},
		{&r.LastVariableBorrowCumulativeIndex, row.LastVariableBorrowCumulativeIndex},
		{&r.CurrentLiquidityRate, row.CurrentLiquidityRate},
		{&r.CurrentVariableBorrowRate, row.CurrentVariableBorrowRate},
		{&r.CurrentStableBorrowRate, row.CurrentStableBorrowRate},
		{&r.UtilizationRate, row.UtilizationRate},
	}

	for _, f := range fields {
		v, err := parseUint128(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return r, nil
}

func parseUint128(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}

	if !v.IsInteger() || v.IsNegative() || v.BigInt().BitLen() > 128 {
		return decimal.Zero, fmt.Errorf("%s is not a uint128: %w", s, core.ErrPreconditionViolation)
	}

	return v, nil
}

func unix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
