package cli

import (
	"fmt"

	"hr-records/pkg/database/postgresql"

	"github.com/spf13/cobra"
)

var migrationCommands = map[string]postgresql.MigrationCommand{
	"up":     postgresql.MigrateUp,
	"down":   postgresql.MigrateDown,
	"status": postgresql.MigrateStatus,
}

func parseMigrationCommand(arg string) (postgresql.MigrationCommand, error) {
	command, ok := migrationCommands[arg]
	if !ok {
		return "", fmt.Errorf("неизвестная команда %q, ожидается up, down или status", arg)
	}
	return command, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Применить или откатить миграции схемы",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := parseMigrationCommand(args[0])
			if err != nil {
				return err
			}

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			dbConn, err := postgresql.ConnectDB(cmd.Context(), cfg.Postgres, logger)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			return postgresql.Migrate(cmd.Context(), dbConn, command, logger)
		},
	}
}
