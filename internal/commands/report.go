package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ducat-dev/ducat/internal/codec"
	"github.com/ducat-dev/ducat/internal/config"
	"github.com/ducat-dev/ducat/internal/ledger"
	"github.com/ducat-dev/ducat/internal/report"
)

func newReportCommand(configPath *string) *cobra.Command {
	var reportType string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Import a transaction file and print financial reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			led, count, err := importLedger(cfg, args[0], verbose || cfg.Imports.Verbose, cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d transactions from %s\n\n", count, args[0])

			r := report.Renderer{Currency: cfg.Ledger.Currency}
			switch reportType {
			case "trial-balance":
				r.TrialBalance(out, led.TrialBalance())
			case "balance-sheet":
				r.BalanceSheet(out, led.BalanceSheet())
			case "income":
				r.IncomeStatement(out, led.IncomeStatement())
			case "all":
				fmt.Fprintf(out, "=== %s TRIAL BALANCE ===\n", led.Name())
				r.TrialBalance(out, led.TrialBalance())
				fmt.Fprintf(out, "\n=== %s BALANCE SHEET ===\n", led.Name())
				r.BalanceSheet(out, led.BalanceSheet())
				fmt.Fprintf(out, "\n=== %s INCOME STATEMENT ===\n", led.Name())
				r.IncomeStatement(out, led.IncomeStatement())
			default:
				return fmt.Errorf("unknown report type %q", reportType)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportType, "type", "all", "report type: trial-balance, balance-sheet, income, all")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report every skipped record")

	return cmd
}

// importLedger builds a fresh ledger from a transaction file.
func importLedger(cfg *config.Config, path string, verbose bool, cmd *cobra.Command) (*ledger.Ledger, int, error) {
	led := ledger.New(cfg.Ledger.Name)
	count, err := codec.ImportFile(led, path, codec.ImportOptions{
		Verbose: verbose,
		Log:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, 0, err
	}
	return led, count, nil
}
