package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"defilend/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	s, err := Load("testdata/ledger.yaml")
	require.Nil(t, err)

	reserves, err := s.All(ctx)
	require.Nil(t, err)
	require.Len(t, reserves, 2)
	assert.Equal(t, uint64(1), reserves[0].ID)
	assert.Equal(t, "4,USDT", reserves[0].Symbol().String())
	assert.Equal(t, "4,BUSDT", reserves[0].BSymbol().String())
	assert.Equal(t, "50000000000000", reserves[0].UtilizationRate.String())
	assert.Equal(t, int64(1700000000), reserves[0].LastUpdateTime.Unix())

	supply, err := s.TotalSupply(ctx, "btoken.defi", "BUSDT")
	require.Nil(t, err)
	assert.Equal(t, "10000.0000 BUSDT", supply.String())

	_, err = s.TotalSupply(ctx, "btoken.defi", "BBTC")
	assert.True(t, errors.Is(err, core.ErrSupplyNotFound))
	assert.True(t, errors.Is(err, core.ErrNotFound))

	balance, err := s.Balance(ctx, "btoken.defi", "BEOS", "alice")
	require.Nil(t, err)
	assert.Equal(t, int64(1_000_000), balance.Amount)

	balance, err = s.Balance(ctx, "btoken.defi", "BEOS", "bob")
	require.Nil(t, err)
	assert.Zero(t, balance.Amount)

	price, err := s.Price(ctx, 1)
	require.Nil(t, err)
	assert.Equal(t, "4,EOS@eosio.token", price.Coin().String())

	_, err = s.Price(ctx, 9)
	assert.True(t, errors.Is(err, core.ErrOracleNotFound))

	configs, err := s.UserConfigs().FindByOwner(ctx, "alice")
	require.Nil(t, err)
	require.Len(t, configs, 1)
	assert.True(t, configs[0].UseAsCollateral)

	loans, err := s.Loans().FindByOwner(ctx, "alice")
	require.Nil(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, int64(2_000_000), loans[0].PrincipalBorrowBalance)
}

func TestDecodeRejectsBadIndex(t *testing.T) {
	_, err := Decode([]byte(`
loans:
  - owner: alice
    reserve_id: 1
    last_variable_borrow_cumulative_index: "-1"
`))
	assert.True(t, errors.Is(err, core.ErrPreconditionViolation))
}

func TestReservesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.AddReserve(&core.Reserve{ID: 1, PracticalBalance: 10})

	reserves, _ := s.All(ctx)
	reserves[0].PracticalBalance = 0

	reserves, _ = s.All(ctx)
	assert.Equal(t, int64(10), reserves[0].PracticalBalance)
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	store := New().Commands()

	first := &core.Command{TraceID: "a", CreatedAt: time.Unix(1, 0)}
	require.Nil(t, store.Create(ctx, first))
	require.Nil(t, store.Create(ctx, &core.Command{TraceID: "b"}))

	dup := &core.Command{TraceID: "a"}
	require.Nil(t, store.Create(ctx, dup))
	assert.Equal(t, first.ID, dup.ID)

	cmds, err := store.List(ctx, 10)
	require.Nil(t, err)
	require.Len(t, cmds, 2)

	require.Nil(t, store.Delete(ctx, cmds[:1]))
	cmds, _ = store.List(ctx, 10)
	require.Len(t, cmds, 1)
	assert.Equal(t, "b", cmds[0].TraceID)
}
