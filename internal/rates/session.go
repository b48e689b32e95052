package rates

import (
	"sync"

	"taxengine/internal/model"

	"github.com/shopspring/decimal"
)

// TaxDecimals is the rounding precision of computed tax amounts
const TaxDecimals = 2

// Session is one user's view of the rate table: the shared base table
// shadowed by an override set that only this session sees.
type Session struct {
	base *Table

	mu        sync.RWMutex
	overrides *Table
}

// NewSession starts a session with no overrides
func NewSession(base *Table) *Session {
	return &Session{base: base}
}

// Resolve looks zipCode up in the overrides, then the base table.
// An unknown zip code yields a quote with no entry and zero tax.
// The tax amount is rounded half away from zero to TaxDecimals places.
func (s *Session) Resolve(zipCode string, amount decimal.Decimal) model.TaxQuote {
	quote := model.TaxQuote{
		ZipCode:   zipCode,
		Amount:    amount,
		TaxAmount: decimal.Zero,
	}

	s.mu.RLock()
	overrides := s.overrides
	s.mu.RUnlock()

	entry, ok := overrides.Get(zipCode)
	source := model.RateSourceOverride
	if !ok {
		entry, ok = s.base.Get(zipCode)
		source = model.RateSourceBase
	}
	if !ok {
		return quote
	}

	quote.Entry = &entry
	quote.Source = source
	quote.TaxAmount = amount.Mul(entry.Rate).Round(TaxDecimals)
	return quote
}

// LoadOverrides replaces the whole override set with entries and returns
// the number of distinct zip codes now overridden.
func (s *Session) LoadOverrides(entries []model.ZipRateEntry) int {
	t := NewTable(entries)

	s.mu.Lock()
	s.overrides = t
	s.mu.Unlock()

	return t.Len()
}

// ClearOverrides drops the override set
func (s *Session) ClearOverrides() {
	s.mu.Lock()
	s.overrides = nil
	s.mu.Unlock()
}

// OverrideCount returns the number of overridden zip codes
func (s *Session) OverrideCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrides.Len()
}

// BaseCount returns the number of built-in zip codes
func (s *Session) BaseCount() int {
	return s.base.Len()
}

// Effective returns the merged table as seen by Resolve, sorted by zip code,
// with the source of every entry.
func (s *Session) Effective() ([]model.ZipRateEntry, []string) {
	s.mu.RLock()
	overrides := s.overrides
	s.mu.RUnlock()

	merged := make(map[string]string, s.base.Len()+overrides.Len())
	all := make([]model.ZipRateEntry, 0, s.base.Len()+overrides.Len())
	for _, e := range overrides.Entries() {
		merged[e.ZipCode] = model.RateSourceOverride
		all = append(all, e)
	}
	for _, e := range s.base.Entries() {
		if _, shadowed := merged[e.ZipCode]; shadowed {
			continue
		}
		merged[e.ZipCode] = model.RateSourceBase
		all = append(all, e)
	}

	sortEntries(all)
	sources := make([]string, len(all))
	for i, e := range all {
		sources[i] = merged[e.ZipCode]
	}
	return all, sources
}
