package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/internal/config"
	"github.com/sefazor/textback-landing/pkg/database"
	"github.com/sefazor/textback-landing/pkg/logger"
)

func newSeedPlansCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-plans",
		Short: "Migrate the database and sync the plan catalog with configured prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.IsDevelopment())
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			db, err := database.NewDatabase(cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := database.Close(db); err != nil {
					log.Warn("failed to close database", zap.Error(err))
				}
			}()
			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			if err := database.SeedPlans(db, cfg.PriceIDs()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "plans are up to date")
			return nil
		},
	}
}
