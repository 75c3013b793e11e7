package loader

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads records from a worksheet.
//
// The data region is the sheet's print area when one is defined, otherwise the
// detected table region. Its first row is the header.
func LoadXLSX(path string, opts Options) ([]*models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	region, ok := regionFor(f, sheetName, rows, opts.Region)
	if !ok {
		return nil, fmt.Errorf("%w in sheet %q", ErrNoTable, sheetName)
	}

	return ExtractRecords(rows, region)
}

func regionFor(f *excelize.File, sheetName string, rows [][]string, params RegionParams) (models.Region, bool) {
	if areas := PrintAreas(f)[sheetName]; len(areas) > 0 {
		return areas[0], true
	}
	if params == (RegionParams{}) {
		params = DefaultRegionParams()
	}
	return DetectRegion(rows, params)
}

// ExtractRecords converts the cells of region into records.
// Rows without any value are skipped.
func ExtractRecords(rows [][]string, region models.Region) ([]*models.Record, error) {
	header, err := headerRow(rows, region)
	if err != nil {
		return nil, err
	}

	var records []*models.Record
	for r := region.R1 + 1; r <= region.R2 && r <= len(rows); r++ {
		row := rows[r-1]
		record := models.NewRecord()
		hasData := false

		for i, name := range header {
			var value any
			if cell := cellAt(row, region.C1+i); cell != "" {
				value = parseValue(cell)
				hasData = true
			}
			record.Set(name, value)
		}

		if hasData {
			records = append(records, record)
		}
	}

	return records, nil
}

func headerRow(rows [][]string, region models.Region) ([]string, error) {
	if region.R1 < 1 || region.R1 > len(rows) {
		return nil, fmt.Errorf("header row %d out of range", region.R1)
	}

	row := rows[region.R1-1]
	seen := make(map[string]bool)
	header := make([]string, 0, region.Cols())
	for c := region.C1; c <= region.C2; c++ {
		name := cellAt(row, c)
		if name == "" {
			name, _ = excelize.ColumnNumberToName(c)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true
		header = append(header, name)
	}

	return header, nil
}

// cellAt returns the value at 1-based column col, or "" past the row end.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
