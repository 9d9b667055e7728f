package oracle

import (
	"context"
	"fmt"

	"defilend/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type priceStore struct {
	db *db.DB
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.OraclePrice{})
		if err := tx.AutoMigrate(core.OraclePrice{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// New oracle feed reading the replicated price table
func New(db *db.DB) core.IOracleFeed {
	return &priceStore{db: db}
}

func (s *priceStore) Price(ctx context.Context, id uint64) (*core.OraclePrice, error) {
	var price core.OraclePrice
	if err := s.db.View().Where("id = ?", id).First(&price).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("price %d: %w", id, core.ErrOracleNotFound)
		}

		return nil, err
	}

	return &price, nil
}
