package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"defilend/core"
	"defilend/service/exchange"
	"defilend/service/reserve"
	"defilend/service/valuation"
	"defilend/store/fixture"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenContract = "btoken.defi"

var (
	base = core.ExtendedSymbol{Symbol: core.NewSymbol("USDT", 4), Contract: "tethertether"}
	now  = time.Unix(1_700_000_000, 0)
	year = 31_536_000 * time.Second
)

func newService(t *testing.T, at time.Time) (*accountService, *fixture.Store) {
	s, err := fixture.Load("../../store/fixture/testdata/ledger.yaml")
	require.Nil(t, err)

	reserveSrv := reserve.New(s)
	svc := New(
		tokenContract,
		reserveSrv,
		s.UserConfigs(),
		s.Loans(),
		s,
		exchange.New(tokenContract, reserveSrv, s),
		valuation.New(base, 0, s),
	).(*accountService)
	svc.now = func() time.Time { return at }

	return svc, s
}

func TestCollaterals(t *testing.T) {
	svc, _ := newService(t, now)

	positions, err := svc.Collaterals(context.Background(), "alice")
	require.Nil(t, err)
	require.Len(t, positions, 1)

	p := positions[0]
	assert.Equal(t, "100.0000 EOS@eosio.token", p.Asset.String())
	assert.True(t, p.Value.Equal(decimal.NewFromInt(400)), p.Value.String())
	assert.True(t, p.RiskWeightedValue.Equal(decimal.NewFromInt(320)), p.RiskWeightedValue.String())

	// collateral switch off
	positions, err = svc.Collaterals(context.Background(), "bob")
	require.Nil(t, err)
	assert.Empty(t, positions)
}

func TestCollateralsSkipZeroBalance(t *testing.T) {
	svc, s := newService(t, now)
	s.AddUserConfig(&core.UserConfig{Owner: "carol", ReserveID: 1, UseAsCollateral: true})

	positions, err := svc.Collaterals(context.Background(), "carol")
	require.Nil(t, err)
	assert.Empty(t, positions)
}

func TestLoans(t *testing.T) {
	ctx := context.Background()

	svc, _ := newService(t, now)
	positions, err := svc.Loans(ctx, "alice")
	require.Nil(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "200.0000 USDT@tethertether", positions[0].Asset.String())
	assert.True(t, positions[0].Value.Equal(decimal.NewFromInt(200)))
	assert.True(t, positions[0].RiskWeightedValue.Equal(positions[0].Value))

	svc, _ = newService(t, now.Add(year))
	positions, err = svc.Loans(ctx, "alice")
	require.Nil(t, err)
	assert.Equal(t, "210.0000 USDT@tethertether", positions[0].Asset.String())
}

func TestHealthFactor(t *testing.T) {
	ctx := context.Background()

	svc, _ := newService(t, now)
	hf, err := svc.HealthFactor(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, hf.Equal(decimal.RequireFromString("1.6")), hf.String())

	t.Run("no loans", func(t *testing.T) {
		hf, err := svc.HealthFactor(ctx, "bob")
		require.Nil(t, err)
		assert.True(t, hf.IsZero())
	})

	t.Run("interest lowers the factor", func(t *testing.T) {
		svc, _ := newService(t, now.Add(year))
		later, err := svc.HealthFactor(ctx, "alice")
		require.Nil(t, err)
		assert.True(t, later.LessThan(hf))
	})
}

func TestSummary(t *testing.T) {
	svc, s := newService(t, now)
	ctx := context.Background()

	account, err := svc.Summary(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, account.CollateralValue.Equal(decimal.NewFromInt(400)))
	assert.True(t, account.RiskWeightedValue.Equal(decimal.NewFromInt(320)))
	assert.True(t, account.LoanValue.Equal(decimal.NewFromInt(200)))
	assert.False(t, account.Liquidatable)

	// a bigger loan pushes the factor below one
	s.AddLoan(&core.UserReserve{
		Owner:                             "alice",
		ReserveID:                         1,
		PrincipalBorrowBalance:            2_000_000,
		LastVariableBorrowCumulativeIndex: decimal.NewFromInt(100_000_000_000_000),
		LastUpdateTime:                    now,
	})

	account, err = svc.Summary(ctx, "alice")
	require.Nil(t, err)
	assert.True(t, account.HealthFactor.Equal(decimal.RequireFromString("0.8")), account.HealthFactor.String())
	assert.True(t, account.Liquidatable)
}

func TestAbortOnMissingData(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve", func(t *testing.T) {
		svc, s := newService(t, now)
		s.AddLoan(&core.UserReserve{Owner: "carol", ReserveID: 9, LastVariableBorrowCumulativeIndex: decimal.NewFromInt(1)})

		_, err := svc.HealthFactor(ctx, "carol")
		assert.True(t, errors.Is(err, core.ErrReserveNotFound))
	})

	t.Run("oracle", func(t *testing.T) {
		svc, s := newService(t, now)
		s.AddReserve(&core.Reserve{
			ID:                                3,
			Contract:                          "btc.token",
			SymbolCode:                        "BTC",
			SymbolPrecision:                   8,
			BSymbolCode:                       "BBTC",
			BSymbolPrecision:                  8,
			LastVariableBorrowCumulativeIndex: decimal.NewFromInt(1),
			OraclePriceID:                     7,
		})
		s.AddLoan(&core.UserReserve{
			Owner:                             "carol",
			ReserveID:                         3,
			PrincipalBorrowBalance:            1,
			LastVariableBorrowCumulativeIndex: decimal.NewFromInt(1),
			LastUpdateTime:                    now,
		})

		_, err := svc.Summary(ctx, "carol")
		assert.True(t, errors.Is(err, core.ErrOracleNotFound))
	})

	t.Run("zero position index", func(t *testing.T) {
		svc, s := newService(t, now)
		s.AddLoan(&core.UserReserve{Owner: "dave", ReserveID: 1, PrincipalBorrowBalance: 1, LastUpdateTime: now})

		_, err := svc.Loans(ctx, "dave")
		assert.True(t, errors.Is(err, core.ErrPreconditionViolation))
	})
}
