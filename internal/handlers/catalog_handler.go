package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "catalog/internal/errors"
	"catalog/internal/services"
	"catalog/internal/viewstate"
)

// CatalogHandler serves the fixture collections and stateless derivations.
type CatalogHandler struct {
	catalogService services.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// BrowseQuery is a complete view state encoded in query parameters.
type BrowseQuery struct {
	OwnerID     *uint    `form:"owner_id"`
	CategoryIDs []string `form:"category_id"`
	Search      string   `form:"q"`
	Sort        string   `form:"sort" binding:"omitempty,sort_key"`
	Order       string   `form:"order" binding:"omitempty,sort_direction"`
}

// state converts the query into a normalised view state.
func (q BrowseQuery) state() (viewstate.ViewState, error) {
	categoryIDs, err := parseIDList(q.CategoryIDs, "category_id")
	if err != nil {
		return viewstate.ViewState{}, err
	}
	key, err := viewstate.ParseSortKey(q.Sort)
	if err != nil {
		return viewstate.ViewState{}, err
	}
	direction, err := viewstate.ParseSortDirection(q.Order)
	if err != nil {
		return viewstate.ViewState{}, err
	}

	return viewstate.ViewState{
		SelectedOwnerID:     q.OwnerID,
		SelectedCategoryIDs: categoryIDs,
		SearchTerm:          q.Search,
		SortKey:             key,
		SortDirection:       direction,
	}.Normalize(), nil
}

// GetUsers lists the owners available to the owner filter
// @Summary     List owners
// @Description List every user that can own a category
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]models.User "Owners"
// @Router      /users [get]
func (h *CatalogHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": h.catalogService.GetUsers()})
}

// GetCategories lists the categories available to the category filter
// @Summary     List categories
// @Description List every product category with its icon and owner
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]models.Category "Categories"
// @Router      /categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.GetCategories()})
}

// GetProducts derives the product list for a view state given in the query
// @Summary     Browse products
// @Description Join products with their category and owner, then filter and sort them
// @Tags        catalog
// @Produce     json
// @Param       owner_id    query int    false "Only products owned by this user"
// @Param       category_id query []int  false "Only products in these categories (repeatable or comma-separated)" collectionFormat(multi)
// @Param       q           query string false "Case-insensitive product name search"
// @Param       sort        query string false "Sort key" Enums(id, name, category.name, owner.name)
// @Param       order       query string false "Sort direction" Enums(asc, desc)
// @Success     200 {object} services.BrowseResult "Derived view"
// @Success     304 "Not modified"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var query BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	state, err := query.state()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.catalogService.Browse(c.Request.Context(), state)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondWithETag(c, http.StatusOK, result)
}
