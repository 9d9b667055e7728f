package cmd

import (
	"defilend/core"
	"defilend/store/command"
	"defilend/store/fixture"
	"defilend/store/loan"
	"defilend/store/oracle"
	"defilend/store/reserve"
	"defilend/store/token"
	"defilend/store/userconfig"

	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"
)

type stores struct {
	reserves    core.IReserveStore
	ledger      core.ISupplyLedger
	prices      core.IOracleFeed
	userConfigs core.IUserConfigStore
	loans       core.ILoanStore
	commands    core.ICommandStore
}

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

// provideStores ledger tables from the fixture file when set, the database otherwise
func provideStores() stores {
	if cfg.Fixture != "" {
		s, err := fixture.Load(cfg.Fixture)
		if err != nil {
			logrus.WithError(err).Fatalln("load fixture")
		}

		return stores{
			reserves:    s,
			ledger:      s,
			prices:      s,
			userConfigs: s.UserConfigs(),
			loans:       s.Loans(),
			commands:    s.Commands(),
		}
	}

	database := provideDatabase()
	return stores{
		reserves:    reserve.New(database),
		ledger:      token.New(database),
		prices:      oracle.New(database),
		userConfigs: userconfig.New(database),
		loans:       loan.New(database),
		commands:    command.New(database),
	}
}
