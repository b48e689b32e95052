package repository

import (
	"context"
	"fmt"

	"taxengine/internal/catalog"
	"taxengine/internal/model"

	"gorm.io/gorm"
)

// fallbackRuleKey is the stored primary key of the fallback nexus rule.
// It is never exposed: rows read back carry an empty state code and Fallback=true.
const fallbackRuleKey = "*"

// CatalogRepository supplies the nexus rule table (fallback included) and the base zip-rate table
type CatalogRepository interface {
	NexusRules(ctx context.Context) ([]model.NexusRule, error)
	ZipRates(ctx context.Context) ([]model.ZipRateEntry, error)
	Seed(ctx context.Context) error
}

// --- Static (compiled-in) catalog ---

type staticCatalogRepository struct{}

// NewStaticCatalogRepository serves the compiled-in tables directly
func NewStaticCatalogRepository() CatalogRepository {
	return staticCatalogRepository{}
}

func (staticCatalogRepository) NexusRules(ctx context.Context) ([]model.NexusRule, error) {
	return append(catalog.NexusRules(), catalog.DefaultNexusRule()), nil
}

func (staticCatalogRepository) ZipRates(ctx context.Context) ([]model.ZipRateEntry, error) {
	return catalog.ZipRates(), nil
}

func (staticCatalogRepository) Seed(ctx context.Context) error {
	return nil
}

// --- Postgres mirror ---

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository reads the catalog from Postgres. Seed overwrites the
// tables with the compiled-in constants, so the database only mirrors them.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) NexusRules(ctx context.Context) ([]model.NexusRule, error) {
	var rules []model.NexusRule
	if err := r.db.WithContext(ctx).Order("state_code").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch nexus rules: %w", err)
	}
	for i := range rules {
		if rules[i].Fallback {
			rules[i].StateCode = ""
		}
	}
	return rules, nil
}

func (r *catalogRepository) ZipRates(ctx context.Context) ([]model.ZipRateEntry, error) {
	var entries []model.ZipRateEntry
	if err := r.db.WithContext(ctx).Order("zip_code").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch zip rates: %w", err)
	}
	return entries, nil
}

func (r *catalogRepository) Seed(ctx context.Context) error {
	rules := catalog.NexusRules()
	fallback := catalog.DefaultNexusRule()
	fallback.StateCode = fallbackRuleKey
	rules = append(rules, fallback)

	zips := catalog.ZipRates()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.NexusRule{}).Error; err != nil {
			return fmt.Errorf("failed to clear nexus rules: %w", err)
		}
		if err := tx.Create(&rules).Error; err != nil {
			return fmt.Errorf("failed to seed nexus rules: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.ZipRateEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear zip rates: %w", err)
		}
		if err := tx.CreateInBatches(&zips, 100).Error; err != nil {
			return fmt.Errorf("failed to seed zip rates: %w", err)
		}
		return nil
	})
}
