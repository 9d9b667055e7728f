package forwarder

import (
	"context"
	"encoding/json"

	"defilend/core"

	"github.com/fox-one/pkg/logger"
	"github.com/nats-io/nats.go"
)

// Publisher publishes nats messages, satisfied by *nats.Conn
type Publisher interface {
	PublishMsg(msg *nats.Msg) error
}

type natsSender struct {
	pub     Publisher
	subject string
}

// Nats publish commands to subject, the trace id rides in the dedupe header
func Nats(pub Publisher, subject string) core.ICommandSender {
	return &natsSender{pub: pub, subject: subject}
}

func (s *natsSender) Send(ctx context.Context, command *core.Command) error {
	data, err := json.Marshal(command)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(s.subject)
	msg.Header.Set(nats.MsgIdHdr, command.TraceID)
	msg.Data = data

	if err := s.pub.PublishMsg(msg); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("trace", command.TraceID).Errorln("nats: publish command")
		return err
	}

	return nil
}
