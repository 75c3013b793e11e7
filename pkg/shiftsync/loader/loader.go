// Package loader reads scraper output (JSON, CSV or XLSX) into ordered records.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// Format is an input file format.
type Format string

const (
	// FormatJSON is a JSON array or object file.
	FormatJSON Format = "json"
	// FormatCSV is a comma separated file with a header row.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Options configures loading behavior.
type Options struct {
	// Sheet selects the worksheet for xlsx input. Empty means the first sheet.
	Sheet string
	// Region holds table detection parameters for xlsx input.
	Region RegionParams
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Region: DefaultRegionParams(),
	}
}

// FormatOf returns the format for a path based on its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .json, .csv, .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads records from path, choosing the decoder by file extension.
func Load(path string, opts Options) ([]*models.Record, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewLoadError(path, "", ErrFileNotFound)
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, NewLoadError(path, "", err)
	}

	var records []*models.Record
	switch format {
	case FormatJSON:
		records, err = LoadJSON(path)
	case FormatCSV:
		records, err = LoadCSV(path)
	case FormatXLSX:
		records, err = LoadXLSX(path, opts)
	}
	if err != nil {
		return nil, NewLoadError(path, string(format), err)
	}

	return records, nil
}
