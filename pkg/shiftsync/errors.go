package shiftsync

import (
	"errors"
	"fmt"
)

// ErrMissingTable indicates no destination table was given.
var ErrMissingTable = errors.New("table name is required")

// SendError represents an error during one step of an upload.
type SendError struct {
	Doc   string
	Table string
	Step  string // "document", "table", "records"
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to %s/%s failed (%s): %v", e.Doc, e.Table, e.Step, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// NewSendError creates a new SendError.
func NewSendError(doc, table, step string, err error) *SendError {
	return &SendError{
		Doc:   doc,
		Table: table,
		Step:  step,
		Err:   err,
	}
}
