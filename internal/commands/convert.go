package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ducat-dev/ducat/internal/codec"
)

func newConvertCommand(configPath *string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a transaction file between CSV and JSON",
		Long: `Convert imports a transaction file and re-exports it in the format
implied by the output file's extension. CSV is lossy for multi-debit
and 3+-credit transactions; JSON preserves every entry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			led, imported, err := importLedger(cfg, args[0], verbose || cfg.Imports.Verbose, cmd)
			if err != nil {
				return err
			}

			exported, err := codec.ExportFile(led, args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s, exported %d to %s\n",
				imported, args[0], exported, args[1])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report every skipped record")

	return cmd
}
