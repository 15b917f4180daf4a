package commands

import (
	"fmt"
	"os"

	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/platform/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}
	cmd.AddCommand(newMigrateDirectionCommand(database.Up, "Apply all pending migrations"))
	cmd.AddCommand(newMigrateDirectionCommand(database.Down, "Roll back every migration"))
	return cmd
}

func newMigrateDirectionCommand(direction database.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := newLogger(os.Stderr, cfg.LogLevel)
			return database.RunMigrations(logger, cfg.DBDriver, migrationDSN(cfg), direction)
		},
	}
}
