package grist

import (
	"context"
	"net/http"

	"github.com/samber/lo"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist/ident"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

type addRecord struct {
	Fields *models.Record `json:"fields"`
}

type upsertRecord struct {
	Require *models.Record `json:"require"`
	Fields  *models.Record `json:"fields"`
}

type recordID struct {
	ID int `json:"id"`
}

// AddRecords appends records to a table in one request and returns the new
// row ids.
func (c *Client) AddRecords(ctx context.Context, docID, tableID string, records []*models.Record) ([]int, error) {
	body := map[string][]addRecord{
		"records": lo.Map(records, func(r *models.Record, _ int) addRecord { return addRecord{Fields: withColumnIDs(r)} }),
	}

	var out struct {
		Records []recordID `json:"records"`
	}
	err := c.request(ctx, http.MethodPost, "/docs/{docId}/tables/{tableId}/records",
		pathParams{"docId": docID, "tableId": tableID}, body, &out)
	if err != nil {
		return nil, err
	}

	return lo.Map(out.Records, func(r recordID, _ int) int { return r.ID }), nil
}

// UpsertRecords adds or updates records matched on keyColumns. Rows whose key
// fields equal an existing row update it; others are added. Without key
// columns it behaves like AddRecords.
func (c *Client) UpsertRecords(ctx context.Context, docID, tableID string, records []*models.Record, keyColumns []string) ([]int, error) {
	if len(keyColumns) == 0 {
		return c.AddRecords(ctx, docID, tableID, records)
	}

	body := map[string][]upsertRecord{
		"records": lo.Map(records, func(r *models.Record, _ int) upsertRecord {
			require, fields := SplitKeys(r, keyColumns)
			return upsertRecord{Require: require, Fields: fields}
		}),
	}

	err := c.request(ctx, http.MethodPut, "/docs/{docId}/tables/{tableId}/records",
		pathParams{"docId": docID, "tableId": tableID}, body, nil)
	return nil, err
}

// withColumnIDs returns r keyed by Grist column ids. When two keys map to
// the same id the later value wins.
func withColumnIDs(r *models.Record) *models.Record {
	out := models.NewRecord()
	for _, k := range r.Keys {
		out.Set(ident.Column(k), r.Values[k])
	}
	return out
}

// SplitKeys partitions a record into its key fields and the remaining fields,
// both keyed by Grist column ids. A key column missing from the record is
// required to be empty (nil).
func SplitKeys(r *models.Record, keyColumns []string) (require, fields *models.Record) {
	r = withColumnIDs(r)
	keyColumns = lo.Map(keyColumns, func(k string, _ int) string { return ident.Column(k) })

	require = models.NewRecord()
	fields = models.NewRecord()

	for _, k := range keyColumns {
		v, _ := r.Get(k)
		require.Set(k, v)
	}
	for _, k := range r.Keys {
		if !lo.Contains(keyColumns, k) {
			fields.Set(k, r.Values[k])
		}
	}

	return require, fields
}
