package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/config"
	"github.com/slmdecorcoin-design/slm-paintings-backend/internal/db"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	var steps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadDatabaseConfig(cmd, rootOpts)
			if err != nil {
				return err
			}
			if err := db.ApplyMigrations(cfg.Postgres); err != nil {
				return err
			}
			log.Info().Str("path", cfg.Postgres.MigrationsPath).Msg("Migrations applied")
			return nil
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			cfg, err := loadDatabaseConfig(cmd, rootOpts)
			if err != nil {
				return err
			}
			if err := db.RollbackMigrations(cfg.Postgres, steps); err != nil {
				return err
			}
			log.Info().Int("steps", steps).Msg("Migrations rolled back")
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func loadDatabaseConfig(cmd *cobra.Command, rootOpts *RootOptions) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := setupLogging(cmd.ErrOrStderr(), rootOpts, cfg.App.LogLevel); err != nil {
		return nil, err
	}
	if !cfg.Postgres.Enabled() {
		return nil, fmt.Errorf("DB_HOST is not set")
	}
	return cfg, nil
}
