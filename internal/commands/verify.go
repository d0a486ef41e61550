package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ducat-dev/ducat/internal/money"
)

func newVerifyCommand(configPath *string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Import a transaction file and check the books balance",
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

			totalDebits := money.Zero
			totalCredits := money.Zero
			for _, tx := range led.Transactions() {
				totalDebits = totalDebits.Add(tx.DebitTotal())
				totalCredits = totalCredits.Add(tx.CreditTotal())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Transactions posted: %d\n", count)
			fmt.Fprintf(out, "Accounts created:    %d\n", len(led.Accounts()))
			fmt.Fprintf(out, "Total debits:        %s\n", totalDebits)
			fmt.Fprintf(out, "Total credits:       %s\n", totalCredits)
			fmt.Fprintf(out, "Difference:          %s\n", totalDebits.Sub(totalCredits))

			if led.CheckBalanced() {
				color.New(color.FgGreen, color.Bold).Fprintln(out, "\nAll posted transactions are balanced.")
				return nil
			}
			color.New(color.FgRed, color.Bold).Fprintln(out, "\nWARNING: the ledger is NOT balanced.")
			return fmt.Errorf("ledger out of balance")
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report every skipped record")

	return cmd
}
