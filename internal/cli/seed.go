package cli

import (
	"errors"

	"hr-records/pkg/database/postgresql"
	"hr-records/seeders"

	"github.com/spf13/cobra"
)

type seedOptions struct {
	demo  bool
	admin bool
	all   bool
}

func (o seedOptions) empty() bool {
	return !o.demo && !o.admin && !o.all
}

func seedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Наполнить базу демо-данными и учетной записью администратора",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.empty() {
				return errors.New("не указан ни один флаг: --demo, --admin или --all")
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

			if opts.demo || opts.all {
				if err := seeders.SeedDemoData(cmd.Context(), dbConn, logger); err != nil {
					return err
				}
			}
			if opts.admin || opts.all {
				if err := seeders.SeedAdminUser(cmd.Context(), dbConn, cfg.Seeder, logger); err != nil {
					return err
				}
			}

			logger.Info("🎉 Наполнение базы завершено")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.demo, "demo", false, "департаменты, сотрудники и руководители")
	cmd.Flags().BoolVar(&opts.admin, "admin", false, "учетная запись администратора из SEED_ADMIN_*")
	cmd.Flags().BoolVar(&opts.all, "all", false, "все сидеры")
	return cmd
}
