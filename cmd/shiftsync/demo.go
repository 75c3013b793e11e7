package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

var demoTable string

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Upload two example records to check Grist connectivity",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	addGristFlags(cmd)
	cmd.Flags().StringVar(&demoTable, "table", "", "Grist table name")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	d, err := client.GetOrCreateDocument(ctx, cfg.Doc, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Document: %s (ID: %s)\n", d.Name, d.ID)

	now := time.Now().Format(shiftsync.TimestampLayout)
	records := []*models.Record{
		models.RecordOf("timestamp", now, "value", 123, "status", "active"),
		models.RecordOf("timestamp", now, "value", 456, "status", "inactive"),
	}

	tableID, err := client.EnsureTable(ctx, d.ID, demoTable, grist.InferColumns(records))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Table '%s' ready\n", tableID)

	if _, err := client.AddRecords(ctx, d.ID, tableID, records); err != nil {
		return err
	}
	fmt.Fprintf(out, "Added %d records\n", len(records))
	return nil
}
