package cmd

import (
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cobra"
)

// migrateCmd creates the mirrored ledger tables and the command outbox
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "create or update the ledger mirror and command outbox tables",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.FromContext(cmd.Context())

		if cfg.Fixture != "" {
			log.WithField("fixture", cfg.Fixture).Fatalln("migrate: fixture mode has no database")
		}

		database := provideDatabase()
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			log.WithError(err).Fatalln("migrate: database")
		}

		log.Infoln("migrate: done")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
