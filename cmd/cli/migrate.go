package cli

import (
	"context"
	"fmt"
	"log/slog"

	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations to the Postgres store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			applied, err := runMigrations(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", v)
			}
			return nil
		},
	}
}

func runMigrations(ctx context.Context, cfg config.Config) ([]string, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	applied, err := db.Migrate(ctx, pool, migrations.FS)
	if err != nil {
		return nil, err
	}
	slog.Info("migrations applied", "count", len(applied))
	return applied, nil
}
