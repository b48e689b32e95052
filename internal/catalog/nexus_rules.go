// Package catalog holds the compiled-in business tables: nexus thresholds,
// base zip-code rates and the onboarding sample dataset.
package catalog

import (
	"taxengine/internal/model"

	"github.com/shopspring/decimal"
)

// NexusRules returns the per-state nexus thresholds. The slice is freshly
// allocated on each call.
func NexusRules() []model.NexusRule {
	return []model.NexusRule{
		{StateCode: "AL", RevenueThreshold: decimal.NewFromInt(250000)},
		{StateCode: "CA", RevenueThreshold: decimal.NewFromInt(500000)},
		{StateCode: "NY", RevenueThreshold: decimal.NewFromInt(500000), TransactionThreshold: 100},
		{StateCode: "TX", RevenueThreshold: decimal.NewFromInt(500000)},
		{StateCode: "WA", RevenueThreshold: decimal.NewFromInt(100000)},
		{StateCode: "FL", RevenueThreshold: decimal.NewFromInt(100000)},
	}
}

// DefaultNexusRule applies to any state without its own entry
func DefaultNexusRule() model.NexusRule {
	return model.NexusRule{
		RevenueThreshold:     decimal.NewFromInt(100000),
		TransactionThreshold: 200,
		Fallback:             true,
	}
}
