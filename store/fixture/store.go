package fixture

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"defilend/core"
)

type tokenKey struct {
	contract string
	code     string
}

type balanceKey struct {
	tokenKey
	owner string
}

// Store in-memory ledger tables and command outbox
type Store struct {
	mu       sync.RWMutex
	reserves map[uint64]*core.Reserve
	stats    map[tokenKey]*core.TokenStat
	balances map[balanceKey]core.Asset
	prices   map[uint64]*core.OraclePrice
	configs  map[string][]*core.UserConfig
	loans    map[string][]*core.UserReserve
	commands []*core.Command
	lastID   int64
}

// New empty store
func New() *Store {
	return &Store{
		reserves: map[uint64]*core.Reserve{},
		stats:    map[tokenKey]*core.TokenStat{},
		balances: map[balanceKey]core.Asset{},
		prices:   map[uint64]*core.OraclePrice{},
		configs:  map[string][]*core.UserConfig{},
		loans:    map[string][]*core.UserReserve{},
	}
}

// AddReserve insert or replace reserve
func (s *Store) AddReserve(r *core.Reserve) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reserves[r.ID] = r
}

// SetStat insert or replace token stat
func (s *Store) SetStat(stat *core.TokenStat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[tokenKey{stat.Contract, stat.Code}] = stat
}

// SetBalance set owner balance of a token
func (s *Store) SetBalance(contract, owner string, balance core.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[balanceKey{tokenKey{contract, balance.Symbol.Code}, owner}] = balance
}

// SetPrice insert or replace oracle price
func (s *Store) SetPrice(price *core.OraclePrice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prices[price.ID] = price
}

// AddUserConfig append user config row
func (s *Store) AddUserConfig(config *core.UserConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[config.Owner] = append(s.configs[config.Owner], config)
}

// AddLoan append loan position
func (s *Store) AddLoan(loan *core.UserReserve) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loans[loan.Owner] = append(s.loans[loan.Owner], loan)
}

// All implements core.IReserveStore
func (s *Store) All(ctx context.Context) ([]*core.Reserve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reserves := make([]*core.Reserve, 0, len(s.reserves))
	for _, r := range s.reserves {
		cp := *r
		reserves = append(reserves, &cp)
	}

	sort.Slice(reserves, func(i, j int) bool { return reserves[i].ID < reserves[j].ID })
	return reserves, nil
}

// TotalSupply implements core.ISupplyLedger
func (s *Store) TotalSupply(ctx context.Context, contract, code string) (core.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stat, ok := s.stats[tokenKey{contract, code}]
	if !ok {
		return core.Asset{}, fmt.Errorf("stat of %s@%s: %w", code, contract, core.ErrSupplyNotFound)
	}

	return stat.SupplyAsset(), nil
}

// Balance implements core.ISupplyLedger
func (s *Store) Balance(ctx context.Context, contract, code, owner string) (core.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, ok := s.balances[balanceKey{tokenKey{contract, code}, owner}]
	if !ok {
		return core.Asset{Symbol: core.NewSymbol(code, 0)}, nil
	}

	return balance, nil
}

// Price implements core.IOracleFeed
func (s *Store) Price(ctx context.Context, id uint64) (*core.OraclePrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	price, ok := s.prices[id]
	if !ok {
		return nil, fmt.Errorf("price %d: %w", id, core.ErrOracleNotFound)
	}

	cp := *price
	return &cp, nil
}

// UserConfigs user config store view
func (s *Store) UserConfigs() core.IUserConfigStore {
	return userConfigs{s}
}

// Loans loan store view
func (s *Store) Loans() core.ILoanStore {
	return loans{s}
}

// Commands command outbox view
func (s *Store) Commands() core.ICommandStore {
	return commands{s}
}

type userConfigs struct{ *Store }

func (s userConfigs) FindByOwner(ctx context.Context, owner string) ([]*core.UserConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*core.UserConfig, len(s.configs[owner]))
	copy(rows, s.configs[owner])
	return rows, nil
}

type loans struct{ *Store }

func (s loans) FindByOwner(ctx context.Context, owner string) ([]*core.UserReserve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*core.UserReserve, len(s.loans[owner]))
	copy(rows, s.loans[owner])
	return rows, nil
}

type commands struct{ *Store }

func (s commands) Create(ctx context.Context, command *core.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cmd := range s.commands {
		if cmd.TraceID == command.TraceID {
			*command = *cmd
			return nil
		}
	}

	s.lastID++
	command.ID = s.lastID
	if command.CreatedAt.IsZero() {
		command.CreatedAt = time.Now()
	}

	cp := *command
	s.commands = append(s.commands, &cp)
	return nil
}

func (s commands) List(ctx context.Context, limit int) ([]*core.Command, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.commands) {
		limit = len(s.commands)
	}

	rows := make([]*core.Command, limit)
	copy(rows, s.commands[:limit])
	return rows, nil
}

func (s commands) Delete(ctx context.Context, cmds []*core.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := make(map[int64]bool, len(cmds))
	for _, cmd := range cmds {
		deleted[cmd.ID] = true
	}

	kept := s.commands[:0]
	for _, cmd := range s.commands {
		if !deleted[cmd.ID] {
			kept = append(kept, cmd)
		}
	}
	s.commands = kept
	return nil
}
