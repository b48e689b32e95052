package service

import (
	"context"
	"fmt"

	"taxengine/internal/model"
	"taxengine/internal/nexus"
	"taxengine/internal/rates"
	"taxengine/internal/repository"
)

// LoadCatalog builds the nexus evaluator and base rate table from repo.
// The rule set must contain exactly one fallback rule.
func LoadCatalog(ctx context.Context, repo repository.CatalogRepository) (*nexus.Evaluator, *rates.Table, error) {
	all, err := repo.NexusRules(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		rules    []model.NexusRule
		fallback *model.NexusRule
	)
	for i := range all {
		if !all[i].Fallback {
			rules = append(rules, all[i])
			continue
		}
		if fallback != nil {
			return nil, nil, fmt.Errorf("nexus rule table has more than one fallback rule")
		}
		fallback = &all[i]
	}
	if fallback == nil {
		return nil, nil, fmt.Errorf("nexus rule table has no fallback rule")
	}

	evaluator, err := nexus.NewEvaluator(rules, *fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid nexus rule table: %w", err)
	}

	zips, err := repo.ZipRates(ctx)
	if err != nil {
		return nil, nil, err
	}

	return evaluator, rates.NewTable(zips), nil
}
