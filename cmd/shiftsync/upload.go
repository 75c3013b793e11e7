package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/loader"
	"go.uber.org/zap"
)

var (
	uploadTable      string
	uploadUpsert     bool
	uploadKeyColumns []string
	uploadSheet      string
)

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [input.json|input.csv|input.xlsx]",
		Short: "Send scraper output to a Grist table",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpload,
	}

	addGristFlags(cmd)
	cmd.Flags().StringVar(&uploadTable, "table", "", "Grist table name")
	cmd.Flags().BoolVar(&uploadUpsert, "upsert", false, "Upsert records (update existing)")
	cmd.Flags().StringSliceVar(&uploadKeyColumns, "key-columns", nil, "Columns to use for upsert matching")
	cmd.Flags().StringVar(&uploadSheet, "sheet", "", "Worksheet to read from xlsx input (default: first sheet)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Loading data from %s...\n", inputPath)
	opts := loader.DefaultOptions()
	opts.Sheet = uploadSheet
	records, err := loader.Load(inputPath, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d records\n", len(records))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := shiftsync.Send(cmd.Context(), newClient(cfg), records, shiftsync.Options{
		Doc:        cfg.Doc,
		Table:      uploadTable,
		Upsert:     uploadUpsert,
		KeyColumns: uploadKeyColumns,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("upload failed", zap.Error(err))
		return fmt.Errorf("error sending data to Grist: %w", err)
	}

	if result.Count == 0 {
		fmt.Fprintln(out, "No data to send")
		return nil
	}
	fmt.Fprintf(out, "Successfully sent %d records to %s/%s\n", result.Count, cfg.Doc, result.Table)
	return nil
}
