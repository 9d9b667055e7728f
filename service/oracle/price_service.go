package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"defilend/core"
	"defilend/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cast"
)

// chain timestamps carry no zone
const timeLayout = "2006-01-02T15:04:05"

type (
	priceService struct {
		endpoint string
		contract string
	}

	tableRowsRequest struct {
		Code       string `json:"code"`
		Scope      string `json:"scope"`
		Table      string `json:"table"`
		LowerBound string `json:"lower_bound"`
		UpperBound string `json:"upper_bound"`
		Limit      int    `json:"limit"`
		JSON       bool   `json:"json"`
	}

	priceRow struct {
		ID   interface{} `json:"id"`
		Coin struct {
			Contract string `json:"contract"`
			Sym      string `json:"sym"`
		} `json:"coin"`
		Precision  interface{} `json:"precision"`
		AvgPrice   interface{} `json:"avg_price"`
		LastUpdate string      `json:"last_update"`
	}

	tableRowsResponse struct {
		Rows []*priceRow `json:"rows"`
		More bool        `json:"more"`
	}
)

// New oracle feed reading the prices table of contract through a chain api endpoint
func New(endpoint, contract string) core.IOracleFeed {
	return &priceService{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		contract: contract,
	}
}

func (s *priceService) Price(ctx context.Context, id uint64) (*core.OraclePrice, error) {
	bound := cast.ToString(id)
	req := tableRowsRequest{
		Code:       s.contract,
		Scope:      s.contract,
		Table:      "prices",
		LowerBound: bound,
		UpperBound: bound,
		Limit:      1,
		JSON:       true,
	}

	url := s.endpoint + "/v1/chain/get_table_rows"
	resp, err := resthttp.Request(ctx).SetBody(req).Post(url)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("pull price:", url)
		return nil, err
	}

	var rows tableRowsResponse
	if err := resthttp.ParseResponse(resp, &rows); err != nil {
		return nil, err
	}

	for _, row := range rows.Rows {
		price, err := row.price()
		if err != nil {
			return nil, fmt.Errorf("price %d: %w", id, err)
		}

		if price.ID == id {
			return price, nil
		}
	}

	return nil, fmt.Errorf("price %d: %w", id, core.ErrOracleNotFound)
}

func (row *priceRow) price() (*core.OraclePrice, error) {
	id, err := cast.ToUint64E(row.ID)
	if err != nil {
		return nil, fmt.Errorf("id %v: %w", row.ID, core.ErrPreconditionViolation)
	}

	precision, err := cast.ToUint8E(row.Precision)
	if err != nil {
		return nil, fmt.Errorf("precision %v: %w", row.Precision, core.ErrPreconditionViolation)
	}

	avg, err := cast.ToInt64E(row.AvgPrice)
	if err != nil {
		return nil, fmt.Errorf("avg_price %v: %w", row.AvgPrice, core.ErrPreconditionViolation)
	}

	coin, err := core.ParseSymbol(row.Coin.Sym)
	if err != nil {
		return nil, fmt.Errorf("coin: %v: %w", err, core.ErrPreconditionViolation)
	}

	updated, err := time.ParseInLocation(timeLayout, row.LastUpdate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("last_update %q: %w", row.LastUpdate, core.ErrPreconditionViolation)
	}

	return &core.OraclePrice{
		ID:            id,
		CoinContract:  row.Coin.Contract,
		CoinCode:      coin.Code,
		CoinPrecision: coin.Precision,
		Precision:     precision,
		AvgPrice:      avg,
		LastUpdate:    updated,
	}, nil
}
