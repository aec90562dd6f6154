package dataal

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dataal-go/pkg/dataal/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the source is neither spreadsheet bytes nor a
// workbook with at least one sheet.
var ErrInvalidFormat = errors.New("invalid source: expected spreadsheet bytes or a workbook")

// ErrUnsupportedFormat indicates the input is not xlsx, xls or csv.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// DecodeError represents a failure of the underlying spreadsheet reader.
type DecodeError struct {
	Format parser.Format
	Name   string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to decode %s data: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to decode %s file %q: %v", e.Format, e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(format parser.Format, name string, err error) *DecodeError {
	return &DecodeError{
		Format: format,
		Name:   name,
		Err:    err,
	}
}
