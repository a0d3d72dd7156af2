package testutil

import (
	"testing"

	"gorm.io/gorm"

	"catalog/internal/models"
)

// Fixture IDs of SampleFixtures.
const (
	OwnerMax  uint = 100
	OwnerAnna uint = 200

	CategoryFruits  uint = 10
	CategoryFruits2 uint = 20

	ProductApple  uint = 1
	ProductBanana uint = 2
)

// SampleFixtures returns two owners, each with one category holding one
// product: Apple (Fruits, Max) and Banana (Fruits2, Anna).
func SampleFixtures() models.Fixtures {
	return models.Fixtures{
		Users: []models.User{
			{ID: OwnerMax, Name: "Max", Sex: models.SexMale},
			{ID: OwnerAnna, Name: "Anna", Sex: models.SexFemale},
		},
		Categories: []models.Category{
			{ID: CategoryFruits, Title: "Fruits", Icon: "🍏", OwnerID: OwnerMax},
			{ID: CategoryFruits2, Title: "Fruits2", Icon: "🍌", OwnerID: OwnerAnna},
		},
		Products: []models.Product{
			{ID: ProductApple, Name: "Apple", CategoryID: CategoryFruits},
			{ID: ProductBanana, Name: "Banana", CategoryID: CategoryFruits2},
		},
	}
}

// MixedCaseFixtures extends SampleFixtures with products whose names differ
// from their neighbours only in case or by a shared prefix.
func MixedCaseFixtures() models.Fixtures {
	fx := SampleFixtures()
	fx.Products = append(fx.Products,
		models.Product{ID: 3, Name: "apple juice", CategoryID: CategoryFruits2},
		models.Product{ID: 4, Name: "Cherry", CategoryID: CategoryFruits},
		models.Product{ID: 5, Name: "APPLESAUCE", CategoryID: CategoryFruits},
	)
	return fx
}

// SeedTestCatalog writes fx into db and fails the test on error.
func SeedTestCatalog(t *testing.T, db *gorm.DB, fx models.Fixtures) {
	t.Helper()

	for _, u := range fx.Users {
		if err := db.Create(&u).Error; err != nil {
			t.Fatalf("failed to create test user: %v", err)
		}
	}
	for _, c := range fx.Categories {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("failed to create test category: %v", err)
		}
	}
	for _, p := range fx.Products {
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("failed to create test product: %v", err)
		}
	}
}
