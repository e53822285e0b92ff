package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/recondesk-dev/recondesk/internal/api"
	"github.com/recondesk-dev/recondesk/internal/config"
	"github.com/recondesk-dev/recondesk/internal/session"
	"github.com/recondesk-dev/recondesk/internal/tui"
)

func newUICommand() *cobra.Command {
	var cfgPath string
	var scanDir string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive upload and browse screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			client := api.NewClient(cfg.UploadURL())
			sess := session.New()
			m := tui.New(client, sess, cfg.UI.PageSize, cfg.Export.Dir, scanDir)

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", config.DefaultFile, "config file path")
	cmd.Flags().StringVar(&scanDir, "dir", ".", "directory scanned for CSV exports")

	return cmd
}
