package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	// PermissionActive active permission
	PermissionActive = "active"
	// ActionUnstake clear the collateral flag of a deposit
	ActionUnstake = "unstake"
)

type (
	// Command action forwarded to the lending protocol under Authorizer's authority
	Command struct {
		ID         int64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
		CreatedAt  time.Time      `json:"created_at,omitempty"`
		TraceID    string         `sql:"size:36;unique_index:idx_commands_trace" json:"trace_id,omitempty"`
		Authorizer string         `sql:"size:13" json:"authorizer,omitempty"`
		Permission string         `sql:"size:13" json:"permission,omitempty"`
		Contract   string         `sql:"size:13" json:"contract,omitempty"`
		Action     string         `sql:"size:13" json:"action,omitempty"`
		Data       types.JSONText `sql:"type:TEXT" json:"data,omitempty"`
	}

	// UnstakeData unstake action payload
	UnstakeData struct {
		Owner  string `json:"owner"`
		Symbol string `json:"sym"`
	}

	// ICommandSender outbound command interface, fire and forget
	ICommandSender interface {
		Send(ctx context.Context, command *Command) error
	}

	// ICommandStore command outbox
	ICommandStore interface {
		Create(ctx context.Context, command *Command) error
		List(ctx context.Context, limit int) ([]*Command, error)
		Delete(ctx context.Context, commands []*Command) error
	}
)

// BuildCommand build command
func BuildCommand(traceID, authorizer, contract, action string, data interface{}) *Command {
	raw, _ := json.Marshal(data)
	return &Command{
		TraceID:    traceID,
		Authorizer: authorizer,
		Permission: PermissionActive,
		Contract:   contract,
		Action:     action,
		Data:       raw,
	}
}
