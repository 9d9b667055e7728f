package token

import (
	"context"
	"fmt"

	"defilend/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type tokenStore struct {
	db *db.DB
}

// New new token ledger store
func New(db *db.DB) core.ISupplyLedger {
	return &tokenStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.TokenStat{})
		if err := tx.AutoMigrate(core.TokenStat{}).Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.TokenBalance{})
		if err := tx.AutoMigrate(core.TokenBalance{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *tokenStore) TotalSupply(ctx context.Context, contract, code string) (core.Asset, error) {
	var stat core.TokenStat
	if err := s.db.View().Where("contract = ? AND code = ?", contract, code).First(&stat).Error; err != nil {
		if store.IsErrNotFound(err) {
			return core.Asset{}, fmt.Errorf("stat of %s@%s: %w", code, contract, core.ErrSupplyNotFound)
		}

		return core.Asset{}, err
	}

	return stat.SupplyAsset(), nil
}

func (s *tokenStore) Balance(ctx context.Context, contract, code, owner string) (core.Asset, error) {
	var balance core.TokenBalance
	if err := s.db.View().Where("contract = ? AND owner = ? AND code = ?", contract, owner, code).First(&balance).Error; err != nil {
		if store.IsErrNotFound(err) {
			return core.Asset{Symbol: core.NewSymbol(code, 0)}, nil
		}

		return core.Asset{}, err
	}

	return balance.Asset(), nil
}
