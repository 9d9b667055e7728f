package number

import (
	"github.com/shopspring/decimal"
)

// Floor round d down to precision decimals
func Floor(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Floor().Shift(-precision)
}
