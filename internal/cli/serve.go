package cli

import (
	"context"
	"errors"
	"net/http"

	"hr-records/internal/listeners"
	"hr-records/internal/routes"
	"hr-records/pkg/database/postgresql"
	"hr-records/pkg/eventbus"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
			if err != nil {
				logger.Error("Не удалось подключиться к БД", zap.Error(err))
				return err
			}
			defer dbConn.Close()

			if cfg.Postgres.AutoMigrate {
				if err := postgresql.Migrate(ctx, dbConn, postgresql.MigrateUp, logger); err != nil {
					logger.Error("Ошибка автоматической миграции", zap.Error(err))
					return err
				}
			}

			bus := eventbus.New(logger)
			listeners.NewOrphanListener(logger).Register(bus)

			e := routes.NewServer(cfg.Server, dbConn, bus, logger)

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("🚀 Сервер запущен", zap.String("address", cfg.Server.Address()))
				if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			select {
			case err := <-serverErr:
				if err != nil {
					logger.Error("Сервер остановлен с ошибкой", zap.Error(err))
					return err
				}
			case <-ctx.Done():
				logger.Info("Получен сигнал остановки, завершаем работу")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				logger.Error("Ошибка при остановке сервера", zap.Error(err))
				return err
			}
			bus.Wait()

			logger.Info("Сервер остановлен")
			return nil
		},
	}
}
