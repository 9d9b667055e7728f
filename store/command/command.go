package command

import (
	"context"

	"defilend/core"

	"github.com/fox-one/pkg/store/db"
)

type commandStore struct {
	db *db.DB
}

// New new command outbox store
func New(db *db.DB) core.ICommandStore {
	return &commandStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Command{})
		if err := tx.AutoMigrate(core.Command{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Create ignore commands whose trace id is already queued
func (s *commandStore) Create(ctx context.Context, command *core.Command) error {
	return s.db.Update().Where("trace_id = ?", command.TraceID).FirstOrCreate(command).Error
}

func (s *commandStore) List(ctx context.Context, limit int) ([]*core.Command, error) {
	var commands []*core.Command
	if err := s.db.View().Order("id").Limit(limit).Find(&commands).Error; err != nil {
		return nil, err
	}

	return commands, nil
}

func (s *commandStore) Delete(ctx context.Context, commands []*core.Command) error {
	if len(commands) == 0 {
		return nil
	}

	ids := make([]int64, len(commands))
	for idx, cmd := range commands {
		ids[idx] = cmd.ID
	}

	return s.db.Update().Where("id IN (?)", ids).Delete(core.Command{}).Error
}
