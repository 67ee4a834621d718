package cmd

import (
	"context"
	"exam_platform_backend/internal/app"
	"exam_platform_backend/pkg/configwatcher"
	"exam_platform_backend/pkg/logger"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	addServeFlags(serveCmd)
}

// addServeFlags 根命令默认即 serve，两处共用同一组参数
func addServeFlags(c *cobra.Command) {
	c.Flags().Bool("migrate", false, "Run database migrations on start even in release mode")
	c.Flags().Bool("watch-config", true, "Reload grading settings when config.yaml changes")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if m, _ := cmd.Flags().GetBool("migrate"); m {
		cfg.ForceMigrate = true
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if watch, err := cmd.Flags().GetBool("watch-config"); err == nil && watch {
		go func() {
			file := filepath.Join(cfg.Path, "config.yaml")
			if err := configwatcher.WatchConfig(ctx, file, application.ApplyConfig); err != nil {
				logger.L().Warn("Config watcher disabled", zap.Error(err))
			}
		}()
	}

	return application.Run()
}
