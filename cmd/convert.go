package cmd

import (
	"defilend/core"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:     "convert <quantity> <symbol>",
	Short:   "convert between an underlying asset and its wrapped token",
	Example: `defilend convert "1.0000 USDT" 4,BUSDT`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		quantity, err := core.ParseAsset(args[0])
		if err != nil {
			log.WithError(err).Fatalln("parse quantity")
		}

		target, err := core.ParseSymbol(args[1])
		if err != nil {
			log.WithError(err).Fatalln("parse symbol")
		}

		srv := provideServices(provideStores(), false)
		out, err := srv.exchange.GetAmountOut(ctx, quantity, target)
		if err != nil {
			log.WithError(err).Fatalln("convert")
		}

		cmd.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
