// Package fixtures supplies the static users, categories and products the
// catalog is built from. Fixtures are read once at startup; the embedded
// data set is used unless a JSON file or a database is configured.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/logger"
	"catalog/internal/models"
)

//go:embed data/catalog.json
var embedded []byte

// Provider loads a fixture set.
type Provider interface {
	Load(ctx context.Context) (models.Fixtures, error)
}

// Decode reads a JSON fixture document. Unknown fields are rejected so typos
// in hand-edited files surface at startup.
func Decode(r io.Reader) (models.Fixtures, error) {
	var fx models.Fixtures
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fx); err != nil {
		return models.Fixtures{}, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return fx, nil
}

// embeddedProvider serves the data set compiled into the binary.
type embeddedProvider struct{}

// Embedded returns a Provider for the built-in data set.
func Embedded() Provider {
	return embeddedProvider{}
}

func (embeddedProvider) Load(_ context.Context) (models.Fixtures, error) {
	return Decode(bytes.NewReader(embedded))
}

// fileProvider reads a JSON document from disk.
type fileProvider struct {
	path string
}

// File returns a Provider that reads the JSON document at path.
func File(path string) Provider {
	return &fileProvider{path: path}
}

func (p *fileProvider) Load(_ context.Context) (models.Fixtures, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return models.Fixtures{}, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// databaseProvider reads the fixture tables through GORM.
type databaseProvider struct {
	db *gorm.DB
}

// Database returns a Provider backed by the users, categories and products tables.
func Database(db *gorm.DB) Provider {
	return &databaseProvider{db: db}
}

func (p *databaseProvider) Load(ctx context.Context) (models.Fixtures, error) {
	var fx models.Fixtures
	db := p.db.WithContext(ctx)

	if err := db.Order("id").Find(&fx.Users).Error; err != nil {
		return models.Fixtures{}, fmt.Errorf("failed to load users: %w", err)
	}
	if err := db.Order("id").Find(&fx.Categories).Error; err != nil {
		return models.Fixtures{}, fmt.Errorf("failed to load categories: %w", err)
	}
	if err := db.Order("id").Find(&fx.Products).Error; err != nil {
		return models.Fixtures{}, fmt.Errorf("failed to load products: %w", err)
	}

	logger.Get().Infow("fixtures loaded from database",
		"users", len(fx.Users),
		"categories", len(fx.Categories),
		"products", len(fx.Products),
	)
	return fx, nil
}

// Seed writes fx into the fixture tables in one transaction. Rows whose
// primary key already exists are left untouched, so seeding is repeatable.
func Seed(ctx context.Context, db *gorm.DB, fx models.Fixtures) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fx.Users) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fx.Users).Error; err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
		}
		if len(fx.Categories) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fx.Categories).Error; err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
		}
		if len(fx.Products) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fx.Products).Error; err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
		}
		return nil
	})
}
