package forwarder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"defilend/core"
	"defilend/store/fixture"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	msgs []*nats.Msg
	err  error
}

func (r *recorder) PublishMsg(msg *nats.Msg) error {
	if r.err != nil {
		return r.err
	}

	r.msgs = append(r.msgs, msg)
	return nil
}

func unstakeCommand() *core.Command {
	return core.BuildCommand("trace", "alice", "lend.defi", core.ActionUnstake, core.UnstakeData{Owner: "alice", Symbol: "BEOS"})
}

func TestNats(t *testing.T) {
	pub := &recorder{}
	sender := Nats(pub, "defilend.commands")

	require.Nil(t, sender.Send(context.Background(), unstakeCommand()))
	require.Len(t, pub.msgs, 1)

	msg := pub.msgs[0]
	assert.Equal(t, "defilend.commands", msg.Subject)
	assert.Equal(t, "trace", msg.Header.Get(nats.MsgIdHdr))

	var cmd core.Command
	require.Nil(t, json.Unmarshal(msg.Data, &cmd))
	assert.Equal(t, core.ActionUnstake, cmd.Action)
	assert.Equal(t, core.PermissionActive, cmd.Permission)
	assert.JSONEq(t, `{"owner":"alice","sym":"BEOS"}`, cmd.Data.String())
}

func TestNatsPublishError(t *testing.T) {
	pub := &recorder{err: nats.ErrConnectionClosed}
	err := Nats(pub, "defilend.commands").Send(context.Background(), unstakeCommand())
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
}

func TestOutbox(t *testing.T) {
	ctx := context.Background()
	commands := fixture.New().Commands()
	sender := Outbox(commands)

	require.Nil(t, sender.Send(ctx, unstakeCommand()))
	require.Nil(t, sender.Send(ctx, unstakeCommand()))

	queued, err := commands.List(ctx, 10)
	require.Nil(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, "alice", queued[0].Authorizer)
}

func TestOutboxWithoutTrace(t *testing.T) {
	ctx := context.Background()
	commands := fixture.New().Commands()
	sender := Outbox(commands)

	for i := 0; i < 2; i++ {
		cmd := unstakeCommand()
		cmd.TraceID = ""
		require.Nil(t, sender.Send(ctx, cmd))
		assert.NotEmpty(t, cmd.TraceID)
	}

	queued, err := commands.List(ctx, 10)
	require.Nil(t, err)
	assert.Len(t, queued, 2)
}
