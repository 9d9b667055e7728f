package cmd

import (
	"defilend/core"
)

type services struct {
	reserves   core.IReserveService
	exchange   core.IExchangeService
	accounts   core.IAccountService
	collateral core.ICollateralService
}

// provideServices read side services; the collateral guard is wired only when withSender
func provideServices(s stores, withSender bool) services {
	reserveSrv := provideReserveService(s)
	exchangeSrv := provideExchangeService(s, reserveSrv)
	valuationSrv := provideValuationService(provideOracleFeed(s))

	srv := services{
		reserves: reserveSrv,
		exchange: exchangeSrv,
		accounts: provideAccountService(s, reserveSrv, exchangeSrv, valuationSrv),
	}

	if withSender {
		srv.collateral = provideCollateralService(s, reserveSrv, provideCommandSender(s))
	}

	return srv
}
