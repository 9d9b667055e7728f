package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"defilend/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "/v1/chain/get_table_rows", r.URL.Path)

		var req tableRowsRequest
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "oracle.defi", req.Code)
		assert.Equal(t, "prices", req.Table)

		rows := []map[string]interface{}{}
		switch req.LowerBound {
		case "1":
			rows = append(rows, map[string]interface{}{
				"id":          1,
				"coin":        map[string]string{"contract": "eosio.token", "sym": "4,EOS"},
				"precision":   4,
				"avg_price":   "40000",
				"last_update": "2023-11-14T22:13:20",
			})
		case "3":
			// chain returns the next row when the bound misses
			rows = append(rows, map[string]interface{}{
				"id":          4,
				"coin":        map[string]string{"contract": "btc.token", "sym": "8,BTC"},
				"precision":   4,
				"avg_price":   350000000,
				"last_update": "2023-11-14T22:13:20",
			})
		case "5":
			rows = append(rows, map[string]interface{}{
				"id":          5,
				"coin":        map[string]string{"contract": "btc.token", "sym": "BTC"},
				"precision":   4,
				"avg_price":   1,
				"last_update": "2023-11-14T22:13:20",
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"rows": rows, "more": false})
	}))
}

func TestPrice(t *testing.T) {
	var hits int32
	srv := newChain(t, &hits)
	defer srv.Close()

	feed := New(srv.URL+"/", "oracle.defi")
	ctx := context.Background()

	price, err := feed.Price(ctx, 1)
	require.Nil(t, err)
	assert.Equal(t, "4,EOS@eosio.token", price.Coin().String())
	assert.Equal(t, uint8(4), price.Precision)
	assert.Equal(t, int64(40000), price.AvgPrice)
	assert.Equal(t, int64(1_700_000_000), price.LastUpdate.Unix())

	_, err = feed.Price(ctx, 3)
	assert.True(t, errors.Is(err, core.ErrOracleNotFound))

	_, err = feed.Price(ctx, 5)
	assert.True(t, errors.Is(err, core.ErrPreconditionViolation))
}

func TestCache(t *testing.T) {
	var hits int32
	srv := newChain(t, &hits)
	defer srv.Close()

	feed := Cache(New(srv.URL, "oracle.defi"), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		price, err := feed.Price(ctx, 1)
		require.Nil(t, err)
		assert.Equal(t, int64(40000), price.AvgPrice)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	// misses are not cached
	for i := 0; i < 2; i++ {
		_, err := feed.Price(ctx, 3)
		assert.True(t, errors.Is(err, core.ErrNotFound))
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

type ctxFeed struct{}

func (ctxFeed) Price(ctx context.Context, id uint64) (*core.OraclePrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("fetch without deadline")
	}

	return &core.OraclePrice{ID: id, AvgPrice: 40000}, nil
}

func TestCacheDetachedFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	price, err := Cache(ctxFeed{}, time.Minute).Price(ctx, 1)
	require.Nil(t, err)
	assert.Equal(t, int64(40000), price.AvgPrice)
}
