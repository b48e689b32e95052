package ingest

import (
	"fmt"
	"strings"
)

// InputFormatError reports required columns absent from an upload.
// The upload is rejected as a whole.
type InputFormatError struct {
	Dataset  string
	Required []string
	Missing  []string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s CSV is missing required columns: %s (required: %s)",
		e.Dataset, strings.Join(e.Missing, ", "), strings.Join(e.Required, ", "))
}

// RowConversionError reports a cell that could not be read as a number
// in the accepted range.
// One bad cell rejects every row of the upload.
type RowConversionError struct {
	Dataset string
	Line    int
	Column  string
	Value   string
	Err     error
}

func (e *RowConversionError) Error() string {
	return fmt.Sprintf("%s CSV line %d: column %q value %q is not a valid number: %v",
		e.Dataset, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowConversionError) Unwrap() error {
	return e.Err
}
