package derive

import (
	"fmt"
	"slices"

	apperrors "catalog/internal/errors"
	"catalog/internal/models"
)

// EnrichedProduct is a product with its category and owner resolved.
// The referenced records are shared with the catalog and must be treated as
// read-only.
type EnrichedProduct struct {
	models.Product
	Category *models.Category `json:"category"`
	Owner    *models.User     `json:"owner"`
	// CategoryLabel is the category cell text, e.g. "🍏 - Fruits".
	CategoryLabel string `json:"category_label"`
}

// Join resolves every product's category by category_id and its owner
// through the category's owner_id. Products never resolve their owner
// directly. Any dangling or ambiguous reference fails the whole join with
// ErrDataIntegrity; no partially filled rows are returned.
func Join(users []models.User, categories []models.Category, products []models.Product) ([]EnrichedProduct, error) {
	usersByID, err := indexUsers(slices.Clone(users))
	if err != nil {
		return nil, err
	}
	categoriesByID, err := indexCategories(slices.Clone(categories))
	if err != nil {
		return nil, err
	}

	rows := make([]EnrichedProduct, 0, len(products))
	for _, product := range products {
		category, ok := categoriesByID[product.CategoryID]
		if !ok {
			return nil, integrityError("product %d references missing category %d", product.ID, product.CategoryID)
		}
		owner, ok := usersByID[category.OwnerID]
		if !ok {
			return nil, integrityError("category %d of product %d references missing owner %d", category.ID, product.ID, category.OwnerID)
		}
		rows = append(rows, EnrichedProduct{
			Product:       product,
			Category:      category,
			Owner:         owner,
			CategoryLabel: category.Label(),
		})
	}
	return rows, nil
}

func indexUsers(users []models.User) (map[uint]*models.User, error) {
	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		if _, dup := byID[users[i].ID]; dup {
			return nil, integrityError("duplicate user id %d", users[i].ID)
		}
		byID[users[i].ID] = &users[i]
	}
	return byID, nil
}

func indexCategories(categories []models.Category) (map[uint]*models.Category, error) {
	byID := make(map[uint]*models.Category, len(categories))
	for i := range categories {
		if _, dup := byID[categories[i].ID]; dup {
			return nil, integrityError("duplicate category id %d", categories[i].ID)
		}
		byID[categories[i].ID] = &categories[i]
	}
	return byID, nil
}

func integrityError(format string, args ...any) error {
	return apperrors.Wrap(apperrors.ErrDataIntegrity, fmt.Errorf(format, args...))
}
