package models

// Sheet represents a single worksheet to be written.
type Sheet struct {
	// Name is the sheet tab name.
	Name string
	// Header is the first row.
	Header []string
	// Rows holds data rows; nil values are left blank.
	Rows [][]any
	// Widths optionally sets column widths by header index.
	Widths []float64
}

// Workbook represents an in-memory spreadsheet with ordered sheets.
type Workbook struct {
	// Name is the suggested file name (no path).
	Name string
	// Sheets holds sheets in tab order. The first one is the data sheet.
	Sheets []Sheet
}

// Records converts a sheet's rows into records keyed by header.
func (s Sheet) Records() []*Record {
	records := make([]*Record, 0, len(s.Rows))
	for _, row := range s.Rows {
		r := NewRecord()
		for i, h := range s.Header {
			var v any
			if i < len(row) {
				v = row[i]
			}
			r.Set(h, v)
		}
		records = append(records, r)
	}
	return records
}
