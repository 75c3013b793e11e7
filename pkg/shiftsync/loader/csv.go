package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// LoadCSV loads records from a CSV file with a header row.
// Empty values are stored as nil so they infer as Text rather than as dates.
func LoadCSV(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeCSV(f)
}

// DecodeCSV decodes records from r.
func DecodeCSV(r io.Reader) ([]*models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []*models.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		record := models.NewRecord()
		for i, name := range header {
			var value any
			if i < len(row) && row[i] != "" {
				value = row[i]
			}
			record.Set(name, value)
		}
		records = append(records, record)
	}

	return records, nil
}
