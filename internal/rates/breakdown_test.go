package rates

import (
	"testing"

	"taxengine/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown_SplitsSixtyForty(t *testing.T) {
	for _, e := range catalog.ZipRates() {
		b := Breakdown(e)
		assert.True(t, b.State.Add(b.City).Equal(b.Total), "zip %s", e.ZipCode)
		assert.True(t, b.Total.Equal(e.Rate), "zip %s", e.ZipCode)
	}

	b := Breakdown(catalog.ZipRates()[0]) // Beverly Hills 0.095
	assert.Equal(t, "0.0570", b.State.StringFixed(4))
	assert.Equal(t, "0.0380", b.City.StringFixed(4))
}

func TestTable_LenAndNilSafety(t *testing.T) {
	tbl := NewTable(catalog.ZipRates())
	assert.Equal(t, len(catalog.ZipRates()), tbl.Len())

	var nilTable *Table
	_, ok := nilTable.Get("90210")
	assert.False(t, ok)
	assert.Equal(t, 0, nilTable.Len())
	assert.Nil(t, nilTable.Entries())
}
