package valuation

import (
	"context"
	"fmt"
	"time"

	"defilend/core"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type service struct {
	base        core.ExtendedSymbol
	maxPriceAge time.Duration
	feed        core.IOracleFeed
	now         func() time.Time
}

// New new valuation service, base is valued 1:1 without touching the feed.
// A non zero maxPriceAge rejects prices older than that.
func New(base core.ExtendedSymbol, maxPriceAge time.Duration, feed core.IOracleFeed) core.IValuationService {
	return &service{
		base:        base,
		maxPriceAge: maxPriceAge,
		feed:        feed,
		now:         time.Now,
	}
}

// Value amount in the base value unit
func (s *service) Value(ctx context.Context, amount core.ExtendedAsset, oracleID uint64) (decimal.Decimal, error) {
	if amount.ExtendedSymbol() == s.base {
		return amount.Quantity.Decimal(), nil
	}

	price, err := s.feed.Price(ctx, oracleID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("oracle", oracleID).Errorln("feed.Price")
		return decimal.Zero, err
	}

	if price.AvgPrice < 0 {
		return decimal.Zero, fmt.Errorf("price %d is negative: %w", oracleID, core.ErrPreconditionViolation)
	}

	if s.maxPriceAge > 0 {
		if age := s.now().Sub(price.LastUpdate); age > s.maxPriceAge {
			return decimal.Zero, fmt.Errorf("price %d is %s old: %w", oracleID, age.Truncate(time.Second), core.ErrPreconditionViolation)
		}
	}

	p := decimal.New(price.AvgPrice, -int32(price.Precision))
	return amount.Quantity.Decimal().Mul(p), nil
}
