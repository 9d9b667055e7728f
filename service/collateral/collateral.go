package collateral

import (
	"context"
	"fmt"
	"time"

	"defilend/core"
	"defilend/pkg/id"

	"github.com/fox-one/pkg/logger"
)

type service struct {
	lendingContract string
	reserveService  core.IReserveService
	userConfigStore core.IUserConfigStore
	sender          core.ICommandSender
	now             func() time.Time
}

// New new collateral guard, commands go to lendingContract
func New(
	lendingContract string,
	reserveSrv core.IReserveService,
	userConfigStore core.IUserConfigStore,
	sender core.ICommandSender,
) core.ICollateralService {
	return &service{
		lendingContract: lendingContract,
		reserveService:  reserveSrv,
		userConfigStore: userConfigStore,
		sender:          sender,
		now:             time.Now,
	}
}

// Unstake ask the lending contract to clear the collateral flag of code.
// No-op when one of owner's configured reserves still wraps code.
// The outcome of the forwarded action is never observed.
func (s *service) Unstake(ctx context.Context, authorizer, owner, code string) error {
	log := logger.FromContext(ctx).WithField("owner", owner).WithField("sym", code)

	dir, err := s.reserveService.Directory(ctx)
	if err != nil {
		return err
	}

	configs, err := s.userConfigStore.FindByOwner(ctx, owner)
	if err != nil {
		log.WithError(err).Errorln("userconfigs.FindByOwner")
		return err
	}

	for _, config := range configs {
		reserve, err := dir.ByID(config.ReserveID)
		if err != nil {
			return err
		}

		if reserve.BSymbolCode == code {
			log.Debugln("unstake: skip")
			return nil
		}
	}

	traceID := id.UUIDFromString(fmt.Sprintf("unstake:%s:%s:%s:%d", authorizer, owner, code, s.now().Unix()))
	cmd := core.BuildCommand(traceID, authorizer, s.lendingContract, core.ActionUnstake, core.UnstakeData{
		Owner:  owner,
		Symbol: code,
	})

	if err := s.sender.Send(ctx, cmd); err != nil {
		return err
	}

	log.WithField("trace", traceID).Infoln("unstake: forwarded")
	return nil
}
