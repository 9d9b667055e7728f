package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestStartTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := TickWorker{Delay: time.Millisecond, ErrDelay: time.Hour}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var ticks int
	err := w.StartTick(ctx, func(ctx context.Context) error {
		ticks++
		if ticks == 3 {
			// ErrDelay outlives the context
			return errors.New("EOF")
		}
		return nil
	})

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 3, ticks)
}
