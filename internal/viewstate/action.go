package viewstate

import (
	"fmt"
	"strings"

	apperrors "catalog/internal/errors"
)

// ActionType enumerates the discrete user interactions that change a ViewState.
type ActionType string

const (
	ActionSetOwner        ActionType = "set_owner"
	ActionToggleCategory  ActionType = "toggle_category"
	ActionClearCategories ActionType = "clear_categories"
	ActionSetSearch       ActionType = "set_search"
	ActionClearSearch     ActionType = "clear_search"
	ActionSetSort         ActionType = "set_sort"
	ActionResetAll        ActionType = "reset_all"
)

// ActionTypes lists every supported action.
var ActionTypes = []ActionType{
	ActionSetOwner,
	ActionToggleCategory,
	ActionClearCategories,
	ActionSetSearch,
	ActionClearSearch,
	ActionSetSort,
	ActionResetAll,
}

// Action is one user interaction. Only the fields relevant to Type are read.
type Action struct {
	Type       ActionType `json:"type"`
	OwnerID    *uint      `json:"owner_id,omitempty"`
	CategoryID uint       `json:"category_id,omitempty"`
	Text       string     `json:"text,omitempty"`
	SortKey    SortKey    `json:"sort_key,omitempty"`
}

// Apply returns the state that results from applying a to s.
func Apply(s ViewState, a Action) (ViewState, error) {
	switch a.Type {
	case ActionSetOwner:
		return s.SetOwnerFilter(a.OwnerID), nil
	case ActionToggleCategory:
		return s.ToggleCategoryFilter(a.CategoryID), nil
	case ActionClearCategories:
		return s.ClearCategoryFilters(), nil
	case ActionSetSearch:
		return s.SetSearchTerm(a.Text), nil
	case ActionClearSearch:
		return s.ClearSearchTerm(), nil
	case ActionSetSort:
		if !a.SortKey.Valid() {
			return s, apperrors.WithMessage(apperrors.ErrInvalidSort, fmt.Sprintf("unsupported sort key %q", a.SortKey))
		}
		return s.SetSort(a.SortKey), nil
	case ActionResetAll:
		return s.ResetAll(), nil
	}
	return s, apperrors.WithMessage(apperrors.ErrUnknownAction, fmt.Sprintf("unsupported action type %q", a.Type))
}

// ParseSortKey converts external input into a SortKey. Matching is
// case-insensitive and "none" is accepted for SortNone.
func ParseSortKey(raw string) (SortKey, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "none" {
		return SortNone, nil
	}
	key := SortKey(raw)
	if !key.Valid() {
		return SortNone, apperrors.WithMessage(apperrors.ErrInvalidSort, fmt.Sprintf("unsupported sort key %q", raw))
	}
	return key, nil
}

// ParseSortDirection converts external input into a SortDirection. The long
// forms "ascending" and "descending" are accepted too.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return DirectionNone, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return DirectionNone, apperrors.WithMessage(apperrors.ErrInvalidSort, fmt.Sprintf("unsupported sort direction %q", raw))
}
