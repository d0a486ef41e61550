package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ducat-dev/ducat/internal/buildinfo"
	"github.com/ducat-dev/ducat/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "ducat",
		Short:   "Double-entry bookkeeping for transaction files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to ducat.yaml (default: $DUCAT_CONFIG, then ./ducat.yaml)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newConvertCommand(&configPath))
	rootCmd.AddCommand(newVerifyCommand(&configPath))

	return rootCmd
}

// loadConfig resolves the config file: --config flag, then the
// DUCAT_CONFIG environment variable, then ./ducat.yaml. A missing
// file yields defaults; an unreadable or invalid file is an error.
func loadConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	explicit := path != ""
	if path == "" {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.Default("General Ledger"), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
