package cmd

import (
	"exam_platform_backend/internal/seed"
	"exam_platform_backend/pkg/database"
	"exam_platform_backend/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, classes and papers from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger.InitLogger(cfg)
		defer logger.Sync()

		file, _ := cmd.Flags().GetString("file")
		data, err := seed.Load(file)
		if err != nil {
			return err
		}

		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		stats, err := seed.Apply(db, data)
		if err != nil {
			return err
		}
		logger.L().Info("Seed data loaded",
			zap.String("file", file),
			zap.Int("users", stats.Users),
			zap.Int("classes", stats.Classes),
			zap.Int("papers", stats.Papers),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "configs/seed.yaml", "Seed data file")
}
