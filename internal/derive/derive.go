// Package derive computes the visible product list from the catalog fixtures
// and a view state: join, then filter, then sort.
package derive

import (
	"slices"

	"catalog/internal/models"
	"catalog/internal/viewstate"
)

// NoMatchMessage is shown in place of the table when nothing matches.
const NoMatchMessage = "No products matching selected criteria"

// Derive joins, filters and sorts the fixtures for state. The result is
// newly allocated on every call and may be empty; an error is only returned
// for dangling fixture references or an unsupported sort.
func Derive(users []models.User, categories []models.Category, products []models.Product, state viewstate.ViewState) ([]EnrichedProduct, error) {
	rows, err := Join(users, categories, products)
	if err != nil {
		return nil, err
	}
	return filterAndSort(rows, state)
}

func filterAndSort(rows []EnrichedProduct, state viewstate.ViewState) ([]EnrichedProduct, error) {
	out := Filter(rows, state)
	if err := Sort(out, state); err != nil {
		return nil, err
	}
	return out, nil
}

// Catalog holds fixtures that were joined once up front. It is immutable
// after construction and safe for concurrent use.
type Catalog struct {
	users      []models.User
	categories []models.Category
	rows       []EnrichedProduct
}

// NewCatalog copies and joins fx. A data-integrity violation is reported
// here rather than on every derivation.
func NewCatalog(fx models.Fixtures) (*Catalog, error) {
	fx = fx.Clone()
	rows, err := Join(fx.Users, fx.Categories, fx.Products)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		users:      fx.Users,
		categories: fx.Categories,
		rows:       rows,
	}, nil
}

// Derive filters and sorts the joined rows for state.
func (c *Catalog) Derive(state viewstate.ViewState) ([]EnrichedProduct, error) {
	return filterAndSort(c.rows, state)
}

// All returns every joined row in fixture order.
func (c *Catalog) All() []EnrichedProduct {
	return slices.Clone(c.rows)
}

// Size is the number of products in the catalog.
func (c *Catalog) Size() int {
	return len(c.rows)
}

// Users returns a copy of the user fixtures.
func (c *Catalog) Users() []models.User {
	return slices.Clone(c.users)
}

// Categories returns a copy of the category fixtures.
func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

// Panel builds the filter-control model for state.
func (c *Catalog) Panel(state viewstate.ViewState) Panel {
	return BuildPanel(c.users, c.categories, state)
}
