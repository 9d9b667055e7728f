package userconfig

import (
	"context"

	"defilend/core"

	"github.com/fox-one/pkg/store/db"
)

type userConfigStore struct {
	db *db.DB
}

// New new user config store
func New(db *db.DB) core.IUserConfigStore {
	return &userConfigStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.UserConfig{})
		if err := tx.AutoMigrate(core.UserConfig{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *userConfigStore) FindByOwner(ctx context.Context, owner string) ([]*core.UserConfig, error) {
	var configs []*core.UserConfig
	if err := s.db.View().Where("owner = ?", owner).Order("reserve_id").Find(&configs).Error; err != nil {
		return nil, err
	}

	return configs, nil
}
