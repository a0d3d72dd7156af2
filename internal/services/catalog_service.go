package services

import (
	"context"
	"errors"

	"catalog/internal/derive"
	apperrors "catalog/internal/errors"
	"catalog/internal/models"
	"catalog/internal/observability"
	"catalog/internal/viewstate"
)

// catalogService serves the joined, read-only catalog.
type catalogService struct {
	catalog *derive.Catalog
}

// NewCatalogService joins fx once and returns a CatalogServicer. It fails
// when a product or category references a record that does not exist.
func NewCatalogService(fx models.Fixtures) (CatalogServicer, error) {
	catalog, err := derive.NewCatalog(fx)
	if err != nil {
		return nil, err
	}
	return &catalogService{catalog: catalog}, nil
}

// GetUsers returns the owner filter options.
func (s *catalogService) GetUsers() []models.User {
	return s.catalog.Users()
}

// GetCategories returns the category filter options.
func (s *catalogService) GetCategories() []models.Category {
	return s.catalog.Categories()
}

// Browse derives the visible products for state.
func (s *catalogService) Browse(ctx context.Context, state viewstate.ViewState) (*BrowseResult, error) {
	state = state.Normalize()

	timing := observability.StartTiming(ctx, "derive", "join, filter and sort")
	products, err := s.catalog.Derive(state)
	timing.Stop()
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := &BrowseResult{
		State:    state,
		Panel:    s.catalog.Panel(state),
		Products: products,
		Total:    s.catalog.Size(),
		Matched:  len(products),
	}
	if len(products) == 0 {
		result.Message = derive.NoMatchMessage
	}
	return result, nil
}
