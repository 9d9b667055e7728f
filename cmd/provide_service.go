package cmd

import (
	"defilend/core"
	"defilend/service/account"
	"defilend/service/collateral"
	"defilend/service/exchange"
	"defilend/service/forwarder"
	"defilend/service/oracle"
	"defilend/service/reserve"
	"defilend/service/valuation"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

func provideReserveService(s stores) core.IReserveService {
	return reserve.New(s.reserves)
}

func provideExchangeService(s stores, reserveSrv core.IReserveService) core.IExchangeService {
	return exchange.New(cfg.Lending.TokenContract, reserveSrv, s.ledger)
}

// provideOracleFeed remote chain feed behind a cache when an endpoint is set
func provideOracleFeed(s stores) core.IOracleFeed {
	if cfg.Oracle.EndPoint == "" {
		return s.prices
	}

	return oracle.Cache(oracle.New(cfg.Oracle.EndPoint, cfg.Oracle.Contract), cfg.Oracle.CacheTTL)
}

func provideValuationService(feed core.IOracleFeed) core.IValuationService {
	return valuation.New(cfg.BaseAsset.ExtendedSymbol(), cfg.Oracle.MaxPriceAge, feed)
}

func provideAccountService(s stores, reserveSrv core.IReserveService, exchangeSrv core.IExchangeService, valuationSrv core.IValuationService) core.IAccountService {
	return account.New(cfg.Lending.TokenContract, reserveSrv, s.userConfigs, s.loans, s.ledger, exchangeSrv, valuationSrv)
}

func provideCommandSender(s stores) core.ICommandSender {
	if cfg.Forwarder.Driver != "nats" {
		return forwarder.Outbox(s.commands)
	}

	conn, err := nats.Connect(cfg.Forwarder.NatsURL,
		nats.Name(cfg.App.Name),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		logrus.WithError(err).Fatalln("connect nats")
	}

	return forwarder.Nats(conn, cfg.Forwarder.Subject)
}

func provideCollateralService(s stores, reserveSrv core.IReserveService, sender core.ICommandSender) core.ICollateralService {
	return collateral.New(cfg.Lending.Contract, reserveSrv, s.userConfigs, sender)
}
