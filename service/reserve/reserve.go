package reserve

import (
	"context"

	"defilend/core"

	"github.com/fox-one/pkg/logger"
)

type service struct {
	reserves core.IReserveStore
}

// New new reserve service
func New(reserves core.IReserveStore) core.IReserveService {
	return &service{reserves: reserves}
}

// Directory load every reserve once; every lookup of one call goes through the
// returned snapshot
func (s *service) Directory(ctx context.Context) (core.IReserveDirectory, error) {
	reserves, err := s.reserves.All(ctx)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("reserves.All")
		return nil, err
	}

	return NewDirectory(reserves)
}
