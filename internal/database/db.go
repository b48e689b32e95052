package database

import (
	"context"
	"fmt"
	"log"

	"taxengine/internal/model"
	"taxengine/internal/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection opens Postgres through GORM and migrates the catalog tables
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.NexusRule{}, &model.ZipRateEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog tables: %w", err)
	}

	return db, nil
}

// OpenCatalog connects, migrates and reseeds the Postgres catalog mirror
func OpenCatalog(ctx context.Context, dsn string) (repository.CatalogRepository, error) {
	db, err := NewConnection(dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	repo := repository.NewCatalogRepository(db)
	if err := repo.Seed(ctx); err != nil {
		return nil, err
	}
	log.Println("Catalog tables seeded from compiled-in constants.")

	return repo, nil
}
