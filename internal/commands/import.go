package commands

import (
	"fmt"
	"os"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "import <balance-sheet.yaml>",
		Short: "Create accounts and seed opening balances from a balance sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if user == "" {
				user = cfg.OwnerUsername
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening balance sheet: %w", err)
			}
			defer f.Close()

			repos, closeDB, err := openRepositories(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB()

			container := services.NewServiceContainer(cfg, repos)
			resp, err := container.StatementImport.ImportBalanceSheet(cmd.Context(), domain.NewSession(user), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "charts created:   %d\n", resp.ChartsCreated)
			fmt.Fprintf(out, "accounts created: %d\n", resp.AccountsCreated)
			fmt.Fprintf(out, "balances seeded:  %d\n", resp.BalancesSeeded)
			for _, name := range resp.Skipped {
				fmt.Fprintf(out, "skipped (has history): %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user the books belong to (defaults to OWNER_USERNAME)")
	return cmd
}
