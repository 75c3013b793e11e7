package shiftsync

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"go.uber.org/zap"
)

// Result summarizes an upload.
type Result struct {
	// DocID is the Grist document id.
	DocID string
	// Table is the table id records were written to.
	Table string
	// Columns are the columns inferred from the records.
	Columns []models.Column
	// Count is the number of records sent.
	Count int
	// RowIDs are the new row ids (empty for upserts).
	RowIDs []int
}

// Send uploads records to a Grist table, creating the document, table and
// missing columns as needed. Records without a scraped_at field are stamped
// with the upload time.
func Send(ctx context.Context, client *grist.Client, records []*models.Record, opts Options) (*Result, error) {
	logger := opts.logger()
	docName := opts.doc()

	if opts.Table == "" {
		return nil, ErrMissingTable
	}
	if len(records) == 0 {
		logger.Info("no data to send")
		return &Result{}, nil
	}

	logger.Info("getting or creating document", zap.String("doc", docName))
	doc, err := client.GetOrCreateDocument(ctx, docName, opts.WorkspaceID)
	if err != nil {
		return nil, NewSendError(docName, opts.Table, "document", err)
	}
	logger.Info("document ready", zap.String("id", doc.ID))

	columns := grist.InferColumns(records)
	logger.Info("inferred columns",
		zap.Int("count", len(columns)),
		zap.Strings("columns", lo.Map(columns, func(c models.Column, _ int) string { return c.ID })))

	required := columns
	if !lo.ContainsBy(columns, func(c models.Column) bool { return c.ID == ScrapedAtColumn }) {
		required = append(append([]models.Column(nil), columns...),
			models.Column{ID: ScrapedAtColumn, Type: models.TypeDateTime})
	}

	logger.Info("ensuring table", zap.String("table", opts.Table))
	tableID, err := client.EnsureTable(ctx, doc.ID, opts.Table, required)
	if err != nil {
		return nil, NewSendError(docName, opts.Table, "table", err)
	}

	StampRecords(records, opts.now())

	logger.Info("sending records", zap.Int("count", len(records)), zap.Bool("upsert", opts.Upsert))
	var rowIDs []int
	if opts.Upsert {
		rowIDs, err = client.UpsertRecords(ctx, doc.ID, tableID, records, opts.KeyColumns)
	} else {
		rowIDs, err = client.AddRecords(ctx, doc.ID, tableID, records)
	}
	if err != nil {
		return nil, NewSendError(docName, tableID, "records", err)
	}

	logger.Info("sent records",
		zap.Int("count", len(records)),
		zap.String("doc", docName),
		zap.String("table", tableID))

	return &Result{
		DocID:   doc.ID,
		Table:   tableID,
		Columns: columns,
		Count:   len(records),
		RowIDs:  rowIDs,
	}, nil
}

// StampRecords sets scraped_at on every record that does not already have it.
func StampRecords(records []*models.Record, now time.Time) {
	ts := now.Format(TimestampLayout)
	for _, r := range records {
		if !r.Has(ScrapedAtColumn) {
			r.Set(ScrapedAtColumn, ts)
		}
	}
}
