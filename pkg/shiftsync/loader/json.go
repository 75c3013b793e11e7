package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// ErrTrailingData indicates more than one top-level JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// LoadJSON loads records from a JSON file.
//
// A top-level array yields its elements. A top-level object yields the first
// array value found in key order, or is itself wrapped as a single record.
func LoadJSON(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeJSON(f)
}

// DecodeJSON decodes records from r, preserving object key order.
func DecodeJSON(r io.Reader) ([]*models.Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	switch v := value.(type) {
	case []any:
		return toRecords(v), nil
	case *models.Record:
		for _, k := range v.Keys {
			if list, ok := v.Values[k].([]any); ok {
				return toRecords(list), nil
			}
		}
		return []*models.Record{v}, nil
	default:
		return []*models.Record{models.RecordOf("value", v)}, nil
	}
}

// toRecords wraps non-object elements under a "value" key.
func toRecords(items []any) []*models.Record {
	records := make([]*models.Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(*models.Record); ok {
			records = append(records, rec)
			continue
		}
		records = append(records, models.RecordOf("value", item))
	}
	return records
}

// decodeValue reads the next JSON value. Objects become *models.Record,
// arrays []any, numbers json.Number.
func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		return decodeObject(decoder)
	case '[':
		return decodeArray(decoder)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func decodeObject(decoder *json.Decoder) (*models.Record, error) {
	record := models.NewRecord()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		record.Set(key, value)
	}

	// closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return record, nil
}

func decodeArray(decoder *json.Decoder) ([]any, error) {
	items := []any{}
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}

	// closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
