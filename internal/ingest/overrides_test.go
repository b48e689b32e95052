package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOverrides_Valid(t *testing.T) {
	in := "zip_code,city,state,rate,comment\n90210,Override City,CA,0.05,x\n02101,Boston,MA, 0.0625 ,y\n"

	entries, err := ReadOverrides(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "90210", entries[0].ZipCode)
	assert.Equal(t, "Override City", entries[0].City)
	assert.Equal(t, "CA", entries[0].State)
	assert.Equal(t, "0.05", entries[0].Rate.String())

	assert.Equal(t, "02101", entries[1].ZipCode, "leading zero kept")
	assert.Equal(t, "0.0625", entries[1].Rate.String())
}

func TestReadOverrides_HeaderOnly(t *testing.T) {
	entries, err := ReadOverrides(strings.NewReader("zip_code,city,state,rate\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadOverrides_ZipCodeTextPreserved(t *testing.T) {
	in := "zip_code,city,state,rate\n2101,Boston,MA,0.0625\n 33101 ,Miami,FL,0.07\n"

	entries, err := ReadOverrides(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "2101", entries[0].ZipCode)
	assert.Equal(t, " 33101 ", entries[1].ZipCode)
}

func TestReadOverrides_MissingRateColumn(t *testing.T) {
	in := "zip_code,city,state\n90210,Override City,CA\n"

	entries, err := ReadOverrides(strings.NewReader(in))
	assert.Nil(t, entries)

	var fe *InputFormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, []string{"rate"}, fe.Missing)
	assert.Equal(t, OverrideColumns, fe.Required)
	assert.Contains(t, err.Error(), "zip_code, city, state, rate")
}

func TestReadOverrides_NonNumericRate(t *testing.T) {
	for _, bad := range []string{"five percent", "", "8.25%", "0.05.1"} {
		in := "zip_code,city,state,rate\n10001,New York,NY,0.08875\n90210,Override City,CA," + bad + "\n"

		entries, err := ReadOverrides(strings.NewReader(in))
		assert.Nil(t, entries, "rate %q", bad)

		var ce *RowConversionError
		require.True(t, errors.As(err, &ce), "rate %q: got %v", bad, err)
		assert.Equal(t, ColumnRate, ce.Column)
		assert.Equal(t, 3, ce.Line)
		assert.Equal(t, DatasetOverrides, ce.Dataset)
	}
}

func TestReadOverrides_QuotedFields(t *testing.T) {
	in := "zip_code,city,state,rate\n\"04330\",\"Augusta, Capital\",ME,0.055\n"

	entries, err := ReadOverrides(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "04330", entries[0].ZipCode)
	assert.Equal(t, "Augusta, Capital", entries[0].City)
}

func TestReadOverrides_ScientificNotation(t *testing.T) {
	entries, err := ReadOverrides(strings.NewReader("zip_code,city,state,rate\n1,A,B,5e-2\n"))
	require.NoError(t, err)
	assert.Equal(t, "0.05", entries[0].Rate.StringFixed(2))
}

func TestReadOverrides_OutOfRangeRateRejectsAll(t *testing.T) {
	_, err := ReadOverrides(strings.NewReader("zip_code,city,state,rate\n90210,Override City,CA,1e-50000000\n"))

	var ce *RowConversionError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, ColumnRate, ce.Column)
}
