package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrTableNotFound  = errors.New("table not found")
	ErrMalformedTable = errors.New("malformed table")
)

// MalformedTableError reports a table whose rows do not match its columns
type MalformedTableError struct {
	Table  string
	Row    int // zero-based data row, -1 for header problems
	Column string
	Reason string
}

// Error implements the error interface
func (e *MalformedTableError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed table %q: column %q: %s", e.Table, e.Column, e.Reason)
	}
	return fmt.Sprintf("malformed table %q: row %d column %q: %s", e.Table, e.Row, e.Column, e.Reason)
}

// Is matches ErrMalformedTable
func (e *MalformedTableError) Is(target error) bool {
	return target == ErrMalformedTable
}
