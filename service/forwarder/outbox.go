package forwarder

import (
	"context"

	"defilend/core"
	"defilend/pkg/id"

	"github.com/fox-one/pkg/logger"
)

type outbox struct {
	commands core.ICommandStore
}

// Outbox queue commands for the dispatcher worker
func Outbox(commands core.ICommandStore) core.ICommandSender {
	return &outbox{commands: commands}
}

// Send commands without a trace id get a random one, trace ids are unique in the outbox
func (s *outbox) Send(ctx context.Context, command *core.Command) error {
	if command.TraceID == "" {
		command.TraceID = id.GenUUIDString()
	}

	if err := s.commands.Create(ctx, command); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("trace", command.TraceID).Errorln("commands.Create")
		return err
	}

	return nil
}
