package model

import (
	"github.com/shopspring/decimal"
)

// Rate sources reported on a quote
const (
	RateSourceOverride = "override"
	RateSourceBase     = "base"
)

// ZipRateEntry maps a postal code to a combined sales-tax rate.
// Zip codes are opaque strings: leading zeros are significant.
type ZipRateEntry struct {
	ZipCode string          `gorm:"type:varchar(16);primaryKey" json:"zip_code"`
	City    string          `gorm:"type:varchar(255);not null" json:"city"`
	State   string          `gorm:"type:varchar(16);not null;index" json:"state"`
	Rate    decimal.Decimal `gorm:"type:decimal(10,6);not null" json:"rate"` // e.g. 0.0825 = 8.25%
}

// TableName pins the catalog table name
func (ZipRateEntry) TableName() string {
	return "zip_rates"
}

// TaxQuote is the result of resolving one zip code and amount.
// Entry is nil when the zip code is unknown; that is a normal outcome.
type TaxQuote struct {
	ZipCode   string
	Amount    decimal.Decimal
	Entry     *ZipRateEntry
	Source    string
	TaxAmount decimal.Decimal
}

// Found reports whether the quote matched a rate entry
func (q TaxQuote) Found() bool {
	return q.Entry != nil
}

// RateBreakdown splits a combined rate into illustrative state and city parts
type RateBreakdown struct {
	State decimal.Decimal
	City  decimal.Decimal
	Total decimal.Decimal
}
