package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/recondesk-dev/recondesk/internal/buildinfo"
	"github.com/recondesk-dev/recondesk/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "recondesk",
		Short:   "Terminal client for the Exchange/PSP reconciliation service",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newUICommand())
	rootCmd.AddCommand(newUploadCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// loadConfig reads .env (best effort) and the config file. A missing config
// file falls back to defaults; any other read error is fatal.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
