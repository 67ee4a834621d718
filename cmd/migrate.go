package cmd

import (
	"exam_platform_backend/internal/app"
	"exam_platform_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.ForceMigrate = true
		cfg.MigrateOnly = true

		if _, err := app.NewApp(cfg); err != nil {
			return err
		}
		logger.L().Info("Database migration finished")
		logger.Sync()
		return nil
	},
}
