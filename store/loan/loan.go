package loan

import (
	"context"

	"defilend/core"

	"github.com/fox-one/pkg/store/db"
)

type loanStore struct {
	db *db.DB
}

// New new loan store
func New(db *db.DB) core.ILoanStore {
	return &loanStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.UserReserve{})
		if err := tx.AutoMigrate(core.UserReserve{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *loanStore) FindByOwner(ctx context.Context, owner string) ([]*core.UserReserve, error) {
	var loans []*core.UserReserve
	if err := s.db.View().Where("owner = ?", owner).Order("reserve_id").Find(&loans).Error; err != nil {
		return nil, err
	}

	return loans, nil
}
