// Package rates resolves zip codes to sales-tax rates and computes tax owed.
package rates

import (
	"sort"

	"taxengine/internal/model"
)

// Table is an immutable zip-code keyed rate table.
// Keys are used exactly as given: no trimming, padding or case folding.
type Table struct {
	entries map[string]model.ZipRateEntry
}

// NewTable builds a table; a later entry replaces an earlier one with the same zip code.
func NewTable(entries []model.ZipRateEntry) *Table {
	m := make(map[string]model.ZipRateEntry, len(entries))
	for _, e := range entries {
		m[e.ZipCode] = e
	}
	return &Table{entries: m}
}

// Get returns the entry for zipCode
func (t *Table) Get(zipCode string) (model.ZipRateEntry, bool) {
	if t == nil {
		return model.ZipRateEntry{}, false
	}
	e, ok := t.entries[zipCode]
	return e, ok
}

// Len returns the number of distinct zip codes
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns all entries sorted by zip code
func (t *Table) Entries() []model.ZipRateEntry {
	if t == nil {
		return nil
	}
	res := make([]model.ZipRateEntry, 0, len(t.entries))
	for _, e := range t.entries {
		res = append(res, e)
	}
	sortEntries(res)
	return res
}

func sortEntries(entries []model.ZipRateEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ZipCode < entries[j].ZipCode })
}
