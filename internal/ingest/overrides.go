package ingest

import (
	"io"

	"taxengine/internal/model"
)

// Override rate CSV columns
const (
	ColumnZipCode = "zip_code"
	ColumnCity    = "city"
	ColumnState   = "state"
	ColumnRate    = "rate"
)

// DatasetOverrides names the override upload in errors
const DatasetOverrides = "override rate"

// OverrideColumns lists the required override CSV columns
var OverrideColumns = []string{ColumnZipCode, ColumnCity, ColumnState, ColumnRate}

// ReadOverrides parses an override rate CSV. Zip codes keep their textual
// form ("02101" stays "02101"). Any non-numeric rate fails the whole file.
func ReadOverrides(r io.Reader) ([]model.ZipRateEntry, error) {
	t, err := readTable(r, DatasetOverrides, OverrideColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ZipRateEntry, 0, len(t.rows))
	for _, row := range t.rows {
		rate, err := t.decimalCell(row, ColumnRate)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.ZipRateEntry{
			ZipCode: t.cell(row, ColumnZipCode),
			City:    t.cell(row, ColumnCity),
			State:   t.cell(row, ColumnState),
			Rate:    rate,
		})
	}

	return entries, nil
}
