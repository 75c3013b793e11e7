package grist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

func TestAddRecords(t *testing.T) {
	c, srv := newTestClient(t)
	docID := srv.AddDoc(srv.AddWorkspace(DefaultOrg), "Doc")
	srv.AddTable(docID, "Shifts", models.Column{ID: "client"}, models.Column{ID: "hours"})

	ids, err := c.AddRecords(context.Background(), docID, "Shifts", []*models.Record{
		models.RecordOf("client", "Sample Client A", "hours", 8),
		models.RecordOf("client", "Sample Client B", "hours", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	rows := srv.Rows(docID, "Shifts")
	require.Len(t, rows, 2)
	assert.Equal(t, "Sample Client A", rows[0]["client"])
	assert.Equal(t, float64(8), rows[0]["hours"])
	assert.Nil(t, rows[1]["hours"])
}

func TestAddRecordsDisplayNames(t *testing.T) {
	c, srv := newTestClient(t)
	docID := srv.AddDoc(srv.AddWorkspace(DefaultOrg), "Doc")
	srv.AddTable(docID, "Msm", models.Column{ID: "Sch_Start"}, models.Column{ID: "Exception_Type"})

	_, err := c.AddRecords(context.Background(), docID, "Msm", []*models.Record{
		models.RecordOf("Sch Start", "06:00 AM", "Exception Type", "No Show"),
	})
	require.NoError(t, err)

	rows := srv.Rows(docID, "Msm")
	require.Len(t, rows, 1)
	assert.Equal(t, "06:00 AM", rows[0]["Sch_Start"])
	assert.Equal(t, "No Show", rows[0]["Exception_Type"])
}

func TestAddRecordsUnknownColumn(t *testing.T) {
	c, srv := newTestClient(t)
	docID := srv.AddDoc(srv.AddWorkspace(DefaultOrg), "Doc")
	srv.AddTable(docID, "Shifts", models.Column{ID: "client"})

	_, err := c.AddRecords(context.Background(), docID, "Shifts", []*models.Record{
		models.RecordOf("employee", "Jane Doe"),
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestUpsertRecords(t *testing.T) {
	c, srv := newTestClient(t)
	docID := srv.AddDoc(srv.AddWorkspace(DefaultOrg), "Doc")
	srv.AddTable(docID, "Shifts",
		models.Column{ID: "date"}, models.Column{ID: "client"}, models.Column{ID: "status"})
	ctx := context.Background()

	_, err := c.AddRecords(ctx, docID, "Shifts", []*models.Record{
		models.RecordOf("date", "2025-09-01", "client", "Smith, Tony", "status", "Open"),
	})
	require.NoError(t, err)

	_, err = c.UpsertRecords(ctx, docID, "Shifts", []*models.Record{
		models.RecordOf("date", "2025-09-01", "client", "Smith, Tony", "status", "Completed"),
		models.RecordOf("date", "2025-09-02", "client", "Davis, Mary", "status", "Open"),
	}, []string{"date", "client"})
	require.NoError(t, err)

	rows := srv.Rows(docID, "Shifts")
	require.Len(t, rows, 2)
	assert.Equal(t, "Completed", rows[0]["status"])
	assert.Equal(t, "Davis, Mary", rows[1]["client"])
	assert.Contains(t, srv.Writes(), "PUT /api/docs/"+docID+"/tables/Shifts/records")
}

func TestUpsertWithoutKeysAdds(t *testing.T) {
	c, srv := newTestClient(t)
	docID := srv.AddDoc(srv.AddWorkspace(DefaultOrg), "Doc")
	srv.AddTable(docID, "Shifts", models.Column{ID: "client"})

	ids, err := c.UpsertRecords(context.Background(), docID, "Shifts", []*models.Record{
		models.RecordOf("client", "Smith, Tony"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
	assert.Equal(t, []string{"POST /api/docs/" + docID + "/tables/Shifts/records"}, srv.Writes())
}

func TestSplitKeys(t *testing.T) {
	r := models.RecordOf("date", "2025-09-01", "client", "Smith, Tony", "status", "Open")

	keys, fields := SplitKeys(r, []string{"client", "shift_id"})
	assert.Equal(t, []string{"client", "shift_id"}, keys.Keys)
	v, ok := keys.Get("shift_id")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, []string{"date", "status"}, fields.Keys)
}

func TestSplitKeysDisplayNames(t *testing.T) {
	r := models.RecordOf("Sch Start", "06:00 AM", "Employee", "Jane Doe", "Actual Hrs", "7.50")

	keys, fields := SplitKeys(r, []string{"Sch Start", "Employee"})
	assert.Equal(t, []string{"Sch_Start", "Employee"}, keys.Keys)
	assert.Equal(t, []string{"Actual_Hrs"}, fields.Keys)
}
