package cmd

import (
	"defilend/core"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var healthCmd = &cobra.Command{
	Use:   "health <owner>",
	Short: "show collaterals, loans and health factor of an account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		srv := provideServices(provideStores(), false)
		account, err := srv.accounts.Summary(ctx, args[0])
		if err != nil {
			log.WithError(err).Fatalln("summary")
		}

		for _, p := range account.Collaterals {
			log.WithFields(positionFields(p)).Infoln("collateral")
		}

		for _, p := range account.Loans {
			log.WithFields(positionFields(p)).Infoln("loan")
		}

		cmd.Printf("health factor of %s: %s\n", account.Owner, account.HealthFactor)
		if account.Liquidatable {
			cmd.Println("account can be liquidated")
		}
	},
}

var unstakeCmd = &cobra.Command{
	Use:   "unstake <authorizer> <owner> <symbol code>",
	Short: "forward an unstake request for owner's collateral",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		srv := provideServices(provideStores(), true)
		if err := srv.collateral.Unstake(ctx, args[0], args[1], args[2]); err != nil {
			log.WithError(err).Fatalln("unstake")
		}

		cmd.Println("queued")
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(unstakeCmd)
}

type positionLog struct {
	ReserveID uint64 `json:"reserve_id"`
	Quantity  string `json:"quantity"`
	Value     string `json:"value"`
	Risk      string `json:"risk_weighted_value"`
}

func positionFields(p *core.Position) logrus.Fields {
	return structs.Map(positionLog{
		ReserveID: p.ReserveID,
		Quantity:  p.Asset.String(),
		Value:     p.Value.String(),
		Risk:      p.RiskWeightedValue.String(),
	})
}
