package boards

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/loader"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"github.com/xuri/excelize/v2"
)

func TestWriteMondayBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monday_board_import.xlsx")
	require.NoError(t, Write(MondayBoard(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"ABS Shift Data", "Column Mapping", "Instructions"}, f.GetSheetList())

	v, err := f.GetCellValue("ABS Shift Data", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Smith, Tony", v)

	v, err = f.GetCellValue("Instructions", "A11")
	require.NoError(t, err)
	assert.Equal(t, "10", v)

	areas := loader.PrintAreas(f)
	assert.Equal(t, []models.Region{{R1: 1, C1: 1, R2: 6, C2: 11}}, areas["ABS Shift Data"])
	assert.Equal(t, []models.Region{{R1: 1, C1: 1, R2: 12, C2: 3}}, areas["Column Mapping"])
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msm_board_import.xlsx")
	wb := MSMBoard(Options{Seed: 3})
	require.NoError(t, Write(wb, path))

	records, err := loader.Load(path, loader.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, 25)

	assert.Equal(t, MSMColumns, records[0].Keys)
	customer, _ := records[0].Get("Customer")
	assert.Equal(t, wb.Sheets[0].Rows[0][1], customer)
}

func TestWriteEmptyWorkbook(t *testing.T) {
	err := Write(&models.Workbook{Name: "empty.xlsx"}, filepath.Join(t.TempDir(), "empty.xlsx"))
	assert.Error(t, err)
}
