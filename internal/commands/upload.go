package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recondesk-dev/recondesk/internal/api"
	"github.com/recondesk-dev/recondesk/internal/config"
	"github.com/recondesk-dev/recondesk/internal/export"
	"github.com/recondesk-dev/recondesk/internal/model"
	"github.com/recondesk-dev/recondesk/internal/session"
)

func newUploadCommand() *cobra.Command {
	var cfgPath string
	var exchangePath string
	var pspPath string
	var exportStatus string
	var outDir string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the two CSV exports and print the per-status breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return runUpload(cfg, exchangePath, pspPath, exportStatus, outDir)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", config.DefaultFile, "config file path")
	cmd.Flags().StringVar(&exchangePath, "exchange", "", "Exchange CSV export (required)")
	_ = cmd.MarkFlagRequired("exchange")
	cmd.Flags().StringVar(&pspPath, "psp", "", "PSP CSV export (required)")
	_ = cmd.MarkFlagRequired("psp")
	cmd.Flags().StringVar(&exportStatus, "export-status", "", "also export this status's application list as CSV")
	cmd.Flags().StringVar(&outDir, "out", "", "export directory (defaults to the configured one)")

	return cmd
}

func runUpload(cfg *config.Config, exchangePath, pspPath, exportStatus, outDir string) error {
	ctx := context.Background()
	client := api.NewClient(cfg.UploadURL())

	// One best-effort warm-up probe; its outcome never blocks the upload.
	client.ProbeReady(ctx)

	sess := session.New()
	exchangeRef, err := model.NewFileRef(exchangePath)
	if err != nil {
		return err
	}
	pspRef, err := model.NewFileRef(pspPath)
	if err != nil {
		return err
	}
	sess.SelectExchange(exchangeRef)
	sess.SelectPSP(pspRef)

	res, err := client.Upload(ctx, exchangePath, pspPath, func(p int) {
		fmt.Printf("\ruploading... %3d%%", p)
	})
	fmt.Println()
	if err != nil {
		return err
	}
	sess.SetResult(res)

	fmt.Printf("exchange unique: %d\n", res.ExchangeUniqueCount)
	fmt.Printf("psp unique:      %d\n", res.PSPUniqueCount)
	fmt.Printf("exchange only:   %d\n", res.ExchangeOnlyCount)
	fmt.Printf("psp only:        %d\n", res.PSPOnlyCount)
	fmt.Println()

	rows := res.SortedStatusCounts()
	if len(rows) == 0 {
		fmt.Println("no statuses")
	}
	max := res.MaxStatusCount()
	for _, row := range rows {
		fmt.Printf("%-24s %6d  %3d%%\n", row.Status, row.Count, model.BarPercent(row.Count, max))
	}

	if exportStatus != "" {
		dir := outDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		path, err := export.Save(dir, exportStatus, sess.Applications(exportStatus))
		if err != nil {
			return err
		}
		fmt.Printf("\nexported %s\n", path)
	}

	return nil
}
