package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hr-records/pkg/config"
	applogger "hr-records/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hr-records",
		Short:        "HR records - сотрудники, департаменты, документы, отпуска и роли",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(seedCmd())
	return cmd
}

// bootstrap загружает конфигурацию и создает логгер; общее для всех команд.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать логгер: %w", err)
	}
	return cfg, logger, nil
}
