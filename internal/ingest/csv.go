// Package ingest reads uploaded CSV datasets into typed rows.
// Every reader is all-or-nothing: it returns either every row or an error.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"taxengine/pkg/money"

	"github.com/shopspring/decimal"
)

const utf8BOM = "\ufeff"

type row struct {
	line   int
	fields []string
}

// table is a parsed CSV body with its header resolved to column positions
type table struct {
	dataset string
	columns map[string]int
	rows    []row
}

// readTable parses r and checks that every required column is present.
// Header names are compared after trimming whitespace; cell values are kept verbatim.
func readTable(r io.Reader, dataset string, required []string) (*table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &InputFormatError{Dataset: dataset, Required: required, Missing: required}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV header: %w", dataset, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &InputFormatError{Dataset: dataset, Required: required, Missing: missing}
	}

	t := &table{dataset: dataset, columns: columns}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s CSV: %w", dataset, err)
		}
		line, _ := cr.FieldPos(0)
		t.rows = append(t.rows, row{line: line, fields: fields})
	}

	return t, nil
}

func (t *table) cell(r row, column string) string {
	return r.fields[t.columns[column]]
}

// decimalCell parses a numeric cell; surrounding whitespace is ignored.
// Values outside the money range are rejected like non-numeric ones.
func (t *table) decimalCell(r row, column string) (decimal.Decimal, error) {
	raw := t.cell(r, column)
	d, err := money.Parse(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &RowConversionError{
			Dataset: t.dataset,
			Line:    r.line,
			Column:  column,
			Value:   raw,
			Err:     err,
		}
	}
	return d, nil
}
