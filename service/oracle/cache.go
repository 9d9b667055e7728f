package oracle

import (
	"context"
	"time"

	"defilend/core"

	"github.com/bluele/gcache"
	"github.com/spf13/cast"
	"golang.org/x/sync/singleflight"
)

const fetchTimeout = 10 * time.Second

// Cache price lookups for exp, concurrent misses of one id share a request
func Cache(feed core.IOracleFeed, exp time.Duration) core.IOracleFeed {
	return &cacheFeed{
		IOracleFeed: feed,
		exp:         exp,
		cache:       gcache.New(1024).LRU().Build(),
		sf:          &singleflight.Group{},
	}
}

type cacheFeed struct {
	core.IOracleFeed
	exp   time.Duration
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheFeed) Price(ctx context.Context, id uint64) (*core.OraclePrice, error) {
	if v, err := s.cache.Get(id); err == nil {
		if price, ok := v.(*core.OraclePrice); ok {
			return price, nil
		}
	}

	v, err, _ := s.sf.Do(cast.ToString(id), func() (interface{}, error) {
		// shared by concurrent waiters of id
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		price, err := s.IOracleFeed.Price(ctx, id)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(id, price, s.exp)
		return price, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.OraclePrice), nil
}
