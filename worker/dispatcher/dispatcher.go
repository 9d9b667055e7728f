package dispatcher

import (
	"context"
	"errors"
	"net/http"
	"time"

	"defilend/core"
	"defilend/pkg/resthttp"
	"defilend/worker"

	"github.com/fox-one/pkg/logger"
)

// Dispatcher drains the command outbox into the lending protocol's action endpoint
type Dispatcher struct {
	worker.TickWorker
	commands core.ICommandStore
	endpoint string
}

// New new dispatcher
func New(commands core.ICommandStore, endpoint string) *Dispatcher {
	return &Dispatcher{
		TickWorker: worker.TickWorker{
			Delay:    time.Second,
			ErrDelay: 5 * time.Second,
		},
		commands: commands,
		endpoint: endpoint,
	}
}

// Run run worker
func (w *Dispatcher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "dispatcher")
	ctx = logger.WithContext(ctx, log)

	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Dispatcher) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)
	const Limit = 100

	commands, err := w.commands.List(ctx, Limit)
	if err != nil {
		log.WithError(err).Errorln("commands.List")
		return err
	}

	if len(commands) == 0 {
		return errors.New("list commands: EOF")
	}

	var (
		done []*core.Command
		last error
	)

	for _, cmd := range commands {
		if err := w.send(ctx, cmd); err != nil {
			last = err
			break
		}

		done = append(done, cmd)
	}

	if err := w.commands.Delete(ctx, done); err != nil {
		log.WithError(err).Errorln("commands.Delete")
		return err
	}

	return last
}

// send post command; a rejected command is dropped, failed deliveries are retried
func (w *Dispatcher) send(ctx context.Context, cmd *core.Command) error {
	log := logger.FromContext(ctx).WithField("trace", cmd.TraceID)

	resp, err := resthttp.WithRequestID(ctx, cmd.TraceID).SetBody(cmd).Post(w.endpoint)
	if err != nil {
		log.WithError(err).Errorln("post command")
		return err
	}

	if err := resthttp.ParseResponse(resp, nil); err != nil {
		var e *resthttp.Error
		if errors.As(err, &e) && e.Status >= http.StatusBadRequest && e.Status < http.StatusInternalServerError {
			log.WithError(err).Warnln("command rejected, dropped")
			return nil
		}

		log.WithError(err).Errorln("post command")
		return err
	}

	log.Debugln("command dispatched")
	return nil
}
