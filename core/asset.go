package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol currency code with its decimal precision
type Symbol struct {
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

// NewSymbol new symbol
func NewSymbol(code string, precision uint8) Symbol {
	return Symbol{Code: code, Precision: precision}
}

// ParseSymbol parse "4,USDT"
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return Symbol{}, fmt.Errorf("invalid symbol %q", s)
	}

	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("invalid symbol precision %q", s)
	}

	code := strings.ToUpper(strings.TrimSpace(parts[1]))
	if code == "" {
		return Symbol{}, fmt.Errorf("invalid symbol code %q", s)
	}

	return NewSymbol(code, uint8(precision)), nil
}

// IsValid is valid
func (s Symbol) IsValid() bool {
	return s.Code != ""
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// ExtendedSymbol symbol with its issuing ledger
type ExtendedSymbol struct {
	Symbol   Symbol `json:"symbol"`
	Contract string `json:"contract"`
}

func (s ExtendedSymbol) String() string {
	return s.Symbol.String() + "@" + s.Contract
}

// Asset integer amount scaled by its symbol precision
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// ParseAsset parse "1.0000 USDT", amounts are non-negative
func ParseAsset(s string) (Asset, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Asset{}, fmt.Errorf("invalid asset %q", s)
	}

	precision := 0
	if idx := strings.IndexByte(fields[0], '.'); idx >= 0 {
		precision = len(fields[0]) - idx - 1
	}

	if precision > 18 {
		return Asset{}, fmt.Errorf("invalid asset precision %q", s)
	}

	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Asset{}, fmt.Errorf("invalid asset amount %q: %v: %w", s, err, ErrInvalidAmount)
	}

	scaled := amount.Shift(int32(precision))
	if scaled.IsNegative() || !scaled.IsInteger() || scaled.BigInt().BitLen() > 63 {
		return Asset{}, fmt.Errorf("invalid asset amount %q: %w", s, ErrInvalidAmount)
	}

	return Asset{
		Amount: scaled.IntPart(),
		Symbol: NewSymbol(strings.ToUpper(fields[1]), uint8(precision)),
	}, nil
}

// Decimal amount / 10^precision
func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

func (a Asset) String() string {
	return a.Decimal().StringFixed(int32(a.Symbol.Precision)) + " " + a.Symbol.Code
}

// ExtendedAsset asset with its issuing ledger
type ExtendedAsset struct {
	Quantity Asset  `json:"quantity"`
	Contract string `json:"contract"`
}

// Extended extend asset with contract
func (a Asset) Extended(contract string) ExtendedAsset {
	return ExtendedAsset{Quantity: a, Contract: contract}
}

// ExtendedSymbol extended symbol of the asset
func (a ExtendedAsset) ExtendedSymbol() ExtendedSymbol {
	return ExtendedSymbol{Symbol: a.Quantity.Symbol, Contract: a.Contract}
}

func (a ExtendedAsset) String() string {
	return a.Quantity.String() + "@" + a.Contract
}
