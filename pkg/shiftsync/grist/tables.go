package grist

import (
	"context"
	"net/http"

	"github.com/samber/lo"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist/ident"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"go.uber.org/zap"
)

type columnFields struct {
	Type models.ColumnType `json:"type,omitempty"`
}

type columnSpec struct {
	ID     string       `json:"id"`
	Fields columnFields `json:"fields"`
}

type tableSpec struct {
	ID      string       `json:"id"`
	Columns []columnSpec `json:"columns,omitempty"`
}

// toColumnSpecs converts cols to request bodies with Grist column ids,
// dropping repeated ids.
func toColumnSpecs(cols []models.Column) []columnSpec {
	return lo.Map(uniqueColumns(cols), func(col models.Column, _ int) columnSpec {
		return columnSpec{ID: col.ID, Fields: columnFields{Type: col.TypeOrDefault()}}
	})
}

// ListTables lists the table ids of a document.
func (c *Client) ListTables(ctx context.Context, docID string) ([]string, error) {
	var out struct {
		Tables []tableSpec `json:"tables"`
	}
	err := c.request(ctx, http.MethodGet, "/docs/{docId}/tables", pathParams{"docId": docID}, nil, &out)
	if err != nil {
		return nil, err
	}

	return lo.Map(out.Tables, func(t tableSpec, _ int) string { return t.ID }), nil
}

// GetTableSchema returns the columns of a table.
func (c *Client) GetTableSchema(ctx context.Context, docID, tableID string) ([]models.Column, error) {
	var out struct {
		Columns []columnSpec `json:"columns"`
	}
	err := c.request(ctx, http.MethodGet, "/docs/{docId}/tables/{tableId}/columns",
		pathParams{"docId": docID, "tableId": tableID}, nil, &out)
	if err != nil {
		return nil, err
	}

	return lo.Map(out.Columns, func(col columnSpec, _ int) models.Column {
		return models.Column{ID: col.ID, Type: col.Fields.Type}
	}), nil
}

// CreateTable creates a table with the given columns. Grist may normalize
// the table id; the id it assigned is returned.
func (c *Client) CreateTable(ctx context.Context, docID, tableID string, cols []models.Column) (string, error) {
	body := map[string][]tableSpec{
		"tables": {{ID: tableID, Columns: toColumnSpecs(cols)}},
	}

	var out struct {
		Tables []tableSpec `json:"tables"`
	}
	err := c.request(ctx, http.MethodPost, "/docs/{docId}/tables", pathParams{"docId": docID}, body, &out)
	if err != nil {
		return "", err
	}

	if len(out.Tables) > 0 && out.Tables[0].ID != "" {
		return out.Tables[0].ID, nil
	}
	return tableID, nil
}

// AddColumns adds columns to an existing table.
func (c *Client) AddColumns(ctx context.Context, docID, tableID string, cols []models.Column) error {
	body := map[string][]columnSpec{"columns": toColumnSpecs(cols)}
	return c.request(ctx, http.MethodPost, "/docs/{docId}/tables/{tableId}/columns",
		pathParams{"docId": docID, "tableId": tableID}, body, nil)
}

// EnsureTable makes sure tableID exists with at least cols. A missing table is
// created; an existing table gets only the columns it lacks. Existing columns
// are never modified. It returns the id of the table in use.
func (c *Client) EnsureTable(ctx context.Context, docID, tableID string, cols []models.Column) (string, error) {
	tables, err := c.ListTables(ctx, docID)
	if err != nil {
		return "", err
	}

	found, ok := lo.Find(tables, func(id string) bool {
		return id == tableID || id == ident.Table(tableID)
	})
	if !ok {
		created, err := c.CreateTable(ctx, docID, tableID, cols)
		if err != nil {
			return "", err
		}
		c.logger.Info("created table",
			zap.String("doc", docID),
			zap.String("table", created),
			zap.Int("columns", len(cols)))
		return created, nil
	}

	tableID = found
	existing, err := c.GetTableSchema(ctx, docID, tableID)
	if err != nil {
		return "", err
	}

	missing := MissingColumns(existing, cols)
	if len(missing) == 0 {
		return tableID, nil
	}

	if err := c.AddColumns(ctx, docID, tableID, missing); err != nil {
		return "", err
	}
	c.logger.Info("added columns",
		zap.String("doc", docID),
		zap.String("table", tableID),
		zap.Strings("columns", lo.Map(missing, func(col models.Column, _ int) string { return col.ID })))

	return tableID, nil
}

// MissingColumns returns the columns of want whose Grist ids are not in
// existing, in want order and without duplicates.
func MissingColumns(existing, want []models.Column) []models.Column {
	have := lo.SliceToMap(existing, func(col models.Column) (string, bool) { return col.ID, true })
	return lo.Filter(uniqueColumns(want), func(col models.Column, _ int) bool { return !have[col.ID] })
}

// uniqueColumns converts ids to Grist column ids and drops repeats, keeping
// the first.
func uniqueColumns(cols []models.Column) []models.Column {
	cols = lo.Map(cols, func(col models.Column, _ int) models.Column {
		return models.Column{ID: ident.Column(col.ID), Type: col.Type}
	})
	return lo.UniqBy(cols, func(col models.Column) string { return col.ID })
}
