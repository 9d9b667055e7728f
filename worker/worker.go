package worker

import (
	"context"
	"time"
)

// Worker background job, Run blocks until ctx is done
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs onTick repeatedly, waiting Delay after a successful tick
// and ErrDelay after a failed one
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick start tick loop
func (w *TickWorker) StartTick(ctx context.Context, onTick func(ctx context.Context) error) error {
	dur := time.Millisecond
	timer := time.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onTick(ctx); err != nil {
				dur = w.ErrDelay
			} else {
				dur = w.Delay
			}

			timer.Reset(dur)
		}
	}
}
