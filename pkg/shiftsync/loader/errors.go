package loader

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension is not json, csv or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoTable indicates no table-like region was found in a sheet.
var ErrNoTable = errors.New("no table found")

// LoadError represents an error while loading records from a file.
type LoadError struct {
	Path   string
	Format string // "json", "csv", "xlsx"
	Err    error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, format string, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
