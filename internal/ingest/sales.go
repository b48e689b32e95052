package ingest

import (
	"io"

	"taxengine/internal/model"
)

// Sales CSV columns
const (
	ColumnStateCode = "state_code"
	ColumnAmount    = "amount"
)

// DatasetSales names the sales upload in errors
const DatasetSales = "sales"

// SalesColumns lists the required sales CSV columns
var SalesColumns = []string{ColumnStateCode, ColumnAmount}

// ReadSales parses a sales CSV. Extra columns are ignored; state codes
// are taken verbatim.
func ReadSales(r io.Reader) ([]model.SalesRecord, error) {
	t, err := readTable(r, DatasetSales, SalesColumns)
	if err != nil {
		return nil, err
	}

	records := make([]model.SalesRecord, 0, len(t.rows))
	for _, row := range t.rows {
		amount, err := t.decimalCell(row, ColumnAmount)
		if err != nil {
			return nil, err
		}
		records = append(records, model.SalesRecord{
			StateCode: t.cell(row, ColumnStateCode),
			Amount:    amount,
		})
	}

	return records, nil
}
