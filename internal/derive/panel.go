package derive

import (
	"catalog/internal/models"
	"catalog/internal/viewstate"
)

// OwnerOption is one entry of the owner filter tabs.
type OwnerOption struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Sex      models.Sex `json:"sex"`
	Selected bool       `json:"selected"`
}

// CategoryOption is one category toggle button.
type CategoryOption struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
}

// Column describes a sortable table header and the glyph it should show.
type Column struct {
	Key       viewstate.SortKey       `json:"key"`
	Label     string                  `json:"label"`
	Direction viewstate.SortDirection `json:"direction"`
}

// Panel is everything the filter controls need to render the current state.
type Panel struct {
	AllOwners       bool             `json:"all_owners"`
	Owners          []OwnerOption    `json:"owners"`
	AllCategories   bool             `json:"all_categories"`
	Categories      []CategoryOption `json:"categories"`
	SearchTerm      string           `json:"search_term"`
	SearchClearable bool             `json:"search_clearable"`
	Columns         []Column         `json:"columns"`
}

var columnLabels = map[viewstate.SortKey]string{
	viewstate.SortByID:           "ID",
	viewstate.SortByName:         "Product",
	viewstate.SortByCategoryName: "Category",
	viewstate.SortByOwnerName:    "User",
}

// BuildPanel marks the active owner, categories and sort column.
func BuildPanel(users []models.User, categories []models.Category, state viewstate.ViewState) Panel {
	panel := Panel{
		AllOwners:       !state.HasOwnerFilter(),
		Owners:          make([]OwnerOption, 0, len(users)),
		AllCategories:   !state.HasCategoryFilter(),
		Categories:      make([]CategoryOption, 0, len(categories)),
		SearchTerm:      state.SearchTerm,
		SearchClearable: state.HasSearch(),
		Columns:         make([]Column, 0, len(viewstate.SortKeys)),
	}

	for _, u := range users {
		panel.Owners = append(panel.Owners, OwnerOption{
			ID:       u.ID,
			Name:     u.Name,
			Sex:      u.Sex,
			Selected: state.IsOwnerSelected(u.ID),
		})
	}
	for _, c := range categories {
		panel.Categories = append(panel.Categories, CategoryOption{
			ID:       c.ID,
			Title:    c.Title,
			Icon:     c.Icon,
			Selected: state.IsCategorySelected(c.ID),
		})
	}
	for _, key := range viewstate.SortKeys {
		panel.Columns = append(panel.Columns, Column{
			Key:       key,
			Label:     columnLabels[key],
			Direction: state.DirectionFor(key),
		})
	}
	return panel
}
