// Package nexus evaluates aggregated sales against economic-nexus thresholds.
package nexus

import (
	"fmt"
	"sort"

	"taxengine/internal/model"
)

// Evaluator holds an immutable rule table and its fallback rule.
// State codes are matched exactly; "ca" does not match "CA".
type Evaluator struct {
	rules    map[string]model.NexusRule
	fallback model.NexusRule
}

// NewEvaluator validates the rule table and builds an Evaluator.
// The fallback is kept apart from the keyed rules so no state code can collide with it.
func NewEvaluator(rules []model.NexusRule, fallback model.NexusRule) (*Evaluator, error) {
	if fallback.RevenueThreshold.IsNegative() || fallback.TransactionThreshold < 0 {
		return nil, fmt.Errorf("fallback nexus rule has negative thresholds")
	}
	fallback.StateCode = ""
	fallback.Fallback = true

	table := make(map[string]model.NexusRule, len(rules))
	for _, r := range rules {
		if r.Fallback {
			return nil, fmt.Errorf("nexus rule %q is marked as fallback; pass it separately", r.StateCode)
		}
		if r.StateCode == "" {
			return nil, fmt.Errorf("nexus rule with empty state code")
		}
		if r.RevenueThreshold.IsNegative() || r.TransactionThreshold < 0 {
			return nil, fmt.Errorf("nexus rule %q has negative thresholds", r.StateCode)
		}
		if _, dup := table[r.StateCode]; dup {
			return nil, fmt.Errorf("duplicate nexus rule for state %q", r.StateCode)
		}
		table[r.StateCode] = r
	}

	return &Evaluator{rules: table, fallback: fallback}, nil
}

// LookupRule returns the rule for stateCode, or the fallback rule. It never fails.
func (e *Evaluator) LookupRule(stateCode string) model.NexusRule {
	if r, ok := e.rules[stateCode]; ok {
		return r
	}
	return e.fallback
}

// Fallback returns the rule applied to unlisted states
func (e *Evaluator) Fallback() model.NexusRule {
	return e.fallback
}

// Rules returns the keyed rules sorted by state code
func (e *Evaluator) Rules() []model.NexusRule {
	res := make([]model.NexusRule, 0, len(e.rules))
	for _, r := range e.rules {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StateCode < res[j].StateCode })
	return res
}

// Evaluate checks one aggregate against its rule. A zero transaction
// threshold disables the count check instead of breaching at zero.
// Negative revenue is evaluated as given.
func (e *Evaluator) Evaluate(agg model.StateAggregate) model.NexusVerdict {
	rule := e.LookupRule(agg.StateCode)

	liable := agg.TotalRevenue.GreaterThanOrEqual(rule.RevenueThreshold) ||
		(rule.TransactionThreshold > 0 && agg.TotalTransactions >= rule.TransactionThreshold)

	return model.NexusVerdict{
		StateCode:         agg.StateCode,
		TotalRevenue:      agg.TotalRevenue,
		TotalTransactions: agg.TotalTransactions,
		IsLiable:          liable,
		Rule:              rule,
	}
}

// EvaluateBatch aggregates records and evaluates every group, in first-seen order
func (e *Evaluator) EvaluateBatch(records []model.SalesRecord) []model.NexusVerdict {
	aggs := Aggregate(records)
	res := make([]model.NexusVerdict, 0, len(aggs))
	for _, agg := range aggs {
		res = append(res, e.Evaluate(agg))
	}
	return res
}
