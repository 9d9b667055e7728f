package account

import (
	"context"
	"time"

	"defilend/core"
	"defilend/internal/defilend"
	borrow "defilend/pkg/defilend"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type accountService struct {
	tokenContract    string
	reserveService   core.IReserveService
	userConfigStore  core.IUserConfigStore
	loanStore        core.ILoanStore
	ledger           core.ISupplyLedger
	exchangeService  core.IExchangeService
	valuationService core.IValuationService
	now              func() time.Time
}

// New new account service
func New(
	tokenContract string,
	reserveSrv core.IReserveService,
	userConfigStore core.IUserConfigStore,
	loanStore core.ILoanStore,
	ledger core.ISupplyLedger,
	exchangeSrv core.IExchangeService,
	valuationSrv core.IValuationService,
) core.IAccountService {
	return &accountService{
		tokenContract:    tokenContract,
		reserveService:   reserveSrv,
		userConfigStore:  userConfigStore,
		loanStore:        loanStore,
		ledger:           ledger,
		exchangeService:  exchangeSrv,
		valuationService: valuationSrv,
		now:              time.Now,
	}
}

func (s *accountService) Collaterals(ctx context.Context, owner string) ([]*core.Position, error) {
	dir, err := s.reserveService.Directory(ctx)
	if err != nil {
		return nil, err
	}

	return s.collaterals(ctx, dir, owner)
}

func (s *accountService) Loans(ctx context.Context, owner string) ([]*core.Position, error) {
	dir, err := s.reserveService.Directory(ctx)
	if err != nil {
		return nil, err
	}

	return s.loans(ctx, dir, owner, s.now())
}

// HealthFactor sum of risk weighted collateral value over sum of loan value
func (s *accountService) HealthFactor(ctx context.Context, owner string) (decimal.Decimal, error) {
	account, err := s.Summary(ctx, owner)
	if err != nil {
		return decimal.Zero, err
	}

	return account.HealthFactor, nil
}

// Summary collaterals, loans and health factor read from one reserve snapshot
func (s *accountService) Summary(ctx context.Context, owner string) (*core.Account, error) {
	log := logger.FromContext(ctx).WithField("owner", owner)

	dir, err := s.reserveService.Directory(ctx)
	if err != nil {
		return nil, err
	}

	collaterals, err := s.collaterals(ctx, dir, owner)
	if err != nil {
		log.WithError(err).Errorln("collaterals")
		return nil, err
	}

	loans, err := s.loans(ctx, dir, owner, s.now())
	if err != nil {
		log.WithError(err).Errorln("loans")
		return nil, err
	}

	account := &core.Account{
		Owner:       owner,
		Collaterals: collaterals,
		Loans:       loans,
	}

	for _, c := range collaterals {
		account.CollateralValue = account.CollateralValue.Add(c.Value)
		account.RiskWeightedValue = account.RiskWeightedValue.Add(c.RiskWeightedValue)
	}

	for _, l := range loans {
		account.LoanValue = account.LoanValue.Add(l.Value)
	}

	// no loans, or loans worth nothing, yield zero
	if account.LoanValue.IsPositive() {
		account.HealthFactor = account.RiskWeightedValue.Div(account.LoanValue)
		account.Liquidatable = account.HealthFactor.LessThan(decimal.NewFromInt(1))
	}

	return account, nil
}

func (s *accountService) collaterals(ctx context.Context, dir core.IReserveDirectory, owner string) ([]*core.Position, error) {
	configs, err := s.userConfigStore.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	var positions []*core.Position
	for _, config := range configs {
		if !config.UseAsCollateral {
			continue
		}

		reserve, err := dir.ByID(config.ReserveID)
		if err != nil {
			return nil, err
		}

		balance, err := s.ledger.Balance(ctx, s.tokenContract, reserve.BSymbolCode, owner)
		if err != nil {
			return nil, err
		}

		if balance.Amount == 0 {
			continue
		}

		asset, err := s.exchangeService.ToUnderlying(ctx, reserve, balance)
		if err != nil {
			return nil, err
		}

		if asset.Quantity.Amount == 0 {
			continue
		}

		value, err := s.valuationService.Value(ctx, asset, reserve.OraclePriceID)
		if err != nil {
			return nil, err
		}

		threshold := decimal.NewFromInt(int64(reserve.LiquidationThreshold))
		positions = append(positions, &core.Position{
			ReserveID:         reserve.ID,
			Asset:             asset,
			Value:             value,
			RiskWeightedValue: value.Mul(threshold).Div(defilend.BasisPoints),
		})
	}

	return positions, nil
}

func (s *accountService) loans(ctx context.Context, dir core.IReserveDirectory, owner string, now time.Time) ([]*core.Position, error) {
	rows, err := s.loanStore.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	positions := make([]*core.Position, 0, len(rows))
	for _, loan := range rows {
		reserve, err := dir.ByID(loan.ReserveID)
		if err != nil {
			return nil, err
		}

		asset, err := borrow.BorrowBalance(ctx, loan, reserve, now)
		if err != nil {
			return nil, err
		}

		value, err := s.valuationService.Value(ctx, asset, reserve.OraclePriceID)
		if err != nil {
			return nil, err
		}

		positions = append(positions, &core.Position{
			ReserveID:         reserve.ID,
			Asset:             asset,
			Value:             value,
			RiskWeightedValue: value,
		})
	}

	return positions, nil
}
