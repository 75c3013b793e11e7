package shiftsync

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist/gristtest"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2025, 9, 1, 6, 40, 0, 123456000, time.Local)

func newServer(t *testing.T) (*grist.Client, *gristtest.Server, int) {
	t.Helper()
	srv := gristtest.NewServer(grist.DefaultOrg)
	t.Cleanup(srv.Close)
	wsID := srv.AddWorkspace(grist.DefaultOrg)
	return grist.NewClient(gristtest.APIKey, srv.URL), srv, wsID
}

func shiftRecords() []*models.Record {
	return []*models.Record{
		models.RecordOf("date", "2025-09-01", "client", "Smith, Tony", "hours", 3),
		models.RecordOf("date", "2025-09-01", "client", "Smith, Bryce", "hours", 12,
			"scraped_at", "2025-08-31T23:00:00"),
	}
}

func TestSendCreatesDocAndTable(t *testing.T) {
	client, srv, wsID := newServer(t)

	result, err := Send(context.Background(), client, shiftRecords(), Options{
		Table: "shifts",
		Now:   func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultDoc}, srv.Docs(wsID))
	assert.Equal(t, "Shifts", result.Table)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, []int{1, 2}, result.RowIDs)

	expectedCols := []models.Column{
		{ID: "date", Type: models.TypeDateTime},
		{ID: "client", Type: models.TypeText},
		{ID: "hours", Type: models.TypeInt},
		{ID: "scraped_at", Type: models.TypeDateTime},
	}
	if diff := cmp.Diff(expectedCols, srv.Columns(result.DocID, "Shifts")); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, result.Columns, 3, "inferred columns exclude the stamp column")

	rows := srv.Rows(result.DocID, "Shifts")
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-09-01T06:40:00.123456", rows[0]["scraped_at"])
	assert.Equal(t, "2025-08-31T23:00:00", rows[1]["scraped_at"], "existing stamp is kept")
}

func TestSendExistingTable(t *testing.T) {
	client, srv, wsID := newServer(t)
	docID := srv.AddDoc(wsID, "MSM")
	srv.AddTable(docID, "Results",
		models.Column{ID: "date", Type: models.TypeText},
		models.Column{ID: "scraped_at", Type: models.TypeDateTime})

	result, err := Send(context.Background(), client, shiftRecords(), Options{
		Doc:   "MSM",
		Table: "Results",
		Now:   func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	assert.Equal(t, docID, result.DocID)

	assert.Equal(t, []string{
		"POST /api/docs/" + docID + "/tables/Results/columns",
		"POST /api/docs/" + docID + "/tables/Results/records",
	}, srv.Writes())

	cols := srv.Columns(docID, "Results")
	assert.Equal(t, models.TypeText, cols[0].Type, "existing column types are untouched")
	assert.Len(t, cols, 4)
}

func TestSendUpsert(t *testing.T) {
	client, srv, _ := newServer(t)
	ctx := context.Background()
	opts := Options{
		Table:      "Shifts",
		Upsert:     true,
		KeyColumns: []string{"date", "client"},
		Now:        func() time.Time { return fixedNow },
	}

	_, err := Send(ctx, client, shiftRecords(), opts)
	require.NoError(t, err)

	updated := []*models.Record{
		models.RecordOf("date", "2025-09-01", "client", "Smith, Tony", "hours", 4),
	}
	result, err := Send(ctx, client, updated, opts)
	require.NoError(t, err)
	assert.Empty(t, result.RowIDs)

	rows := srv.Rows(result.DocID, "Shifts")
	require.Len(t, rows, 2)
	assert.Equal(t, float64(4), rows[0]["hours"])
}

func TestSendDisplayNameColumns(t *testing.T) {
	client, srv, _ := newServer(t)
	ctx := context.Background()
	records := func() []*models.Record {
		return []*models.Record{
			models.RecordOf("Date", "2025-09-03", "Sch Start", "06:00 AM", "Exception Type", "No Show"),
		}
	}
	opts := Options{Table: "msm data", Now: func() time.Time { return fixedNow }}

	result, err := Send(ctx, client, records(), opts)
	require.NoError(t, err)
	assert.Equal(t, "Msm_data", result.Table)

	rows := srv.Rows(result.DocID, "Msm_data")
	require.Len(t, rows, 1)
	assert.Equal(t, "06:00 AM", rows[0]["Sch_Start"])

	before := len(srv.Writes())
	_, err = Send(ctx, client, records(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /api/docs/" + result.DocID + "/tables/Msm_data/records"}, srv.Writes()[before:])
	assert.Len(t, srv.Rows(result.DocID, "Msm_data"), 2)
}

func TestSendEmpty(t *testing.T) {
	client, srv, _ := newServer(t)
	core, logs := observer.New(zap.InfoLevel)

	result, err := Send(context.Background(), client, nil, Options{Table: "Shifts", Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.Empty(t, srv.Requests())
	assert.Equal(t, 1, logs.FilterMessage("no data to send").Len())
}

func TestSendErrors(t *testing.T) {
	client, _, _ := newServer(t)
	ctx := context.Background()

	_, err := Send(ctx, client, shiftRecords(), Options{})
	assert.ErrorIs(t, err, ErrMissingTable)

	other := grist.NewClient(gristtest.APIKey, client.Server(), grist.WithOrg("brightstar"), grist.WithWorkspace("Nope"))
	_, err = Send(ctx, other, shiftRecords(), Options{Table: "Shifts"})
	var sendErr *SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, "document", sendErr.Step)
	assert.ErrorIs(t, err, grist.ErrWorkspaceNotFound)
}

func TestStampRecords(t *testing.T) {
	records := shiftRecords()
	StampRecords(records, fixedNow)

	v, _ := records[0].Get(ScrapedAtColumn)
	assert.Equal(t, "2025-09-01T06:40:00.123456", v)
	assert.Equal(t, ScrapedAtColumn, records[0].Keys[len(records[0].Keys)-1])
}
