package cmd

import (
	"errors"
	"sync"

	"defilend/worker"
	"defilend/worker/dispatcher"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "defilend job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		if cfg.Forwarder.Driver == "nats" {
			log.Infoln("nats forwarder publishes directly, nothing to dispatch")
			return
		}

		s := provideStores()

		workers := []worker.Worker{
			dispatcher.New(s.commands, cfg.Lending.EndPoint),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil && !errors.Is(err, ctx.Err()) {
					log.WithError(err).Errorln("worker exited")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
