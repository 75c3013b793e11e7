package grist

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// isoLayouts are the ISO-8601 date and date-time shapes accepted as DateTime.
// Fractional seconds are accepted after any layout with seconds.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	const date = "2006-01-02"
	layouts := []string{date}
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15", "15:04", "15:04:05"} {
			for _, zone := range []string{"", "Z07:00", "-0700", "-07"} {
				layouts = append(layouts, date+sep+clock+zone)
			}
		}
	}
	return layouts
}

// InferColumns derives column definitions from the first record.
// Columns follow that record's field order.
func InferColumns(records []*models.Record) []models.Column {
	if len(records) == 0 || records[0] == nil {
		return nil
	}

	sample := records[0]
	columns := make([]models.Column, 0, sample.Len())
	for _, key := range sample.Keys {
		columns = append(columns, models.Column{
			ID:   key,
			Type: InferType(sample.Values[key]),
		})
	}

	return columns
}

// InferType maps a sample value to a Grist column type. Unknown values and
// nil map to Text.
func InferType(value any) models.ColumnType {
	switch v := value.(type) {
	case bool:
		return models.TypeBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return models.TypeInt
	case float32, float64:
		return models.TypeNumeric
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return models.TypeInt
		}
		return models.TypeNumeric
	case time.Time, *time.Time:
		return models.TypeDateTime
	case string:
		if IsISODateTime(v) {
			return models.TypeDateTime
		}
		return models.TypeText
	default:
		return models.TypeText
	}
}

// IsISODateTime reports whether s is an ISO-8601 date or date-time.
// A "Z" suffix is read as +00:00.
func IsISODateTime(s string) bool {
	s = strings.ReplaceAll(s, "Z", "+00:00")
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
