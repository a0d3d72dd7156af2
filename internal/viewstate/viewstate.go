// Package viewstate holds the user's filter and sort selections and the pure
// transitions between them.
//
// A ViewState is a value. Every transition method has a value receiver and
// returns a new ViewState that shares no memory with the receiver, so states
// can be kept, compared and replayed freely. The zero ViewState is the
// initial default: no owner filter, no categories, empty search, no sort.
package viewstate

import (
	"encoding/json"
	"slices"
)

// SortKey names the column the derived product list is ordered by.
type SortKey string

const (
	SortNone           SortKey = ""
	SortByID           SortKey = "id"
	SortByName         SortKey = "name"
	SortByCategoryName SortKey = "category.name"
	SortByOwnerName    SortKey = "owner.name"
)

// SortKeys lists the sortable columns in table order.
var SortKeys = []SortKey{SortByID, SortByName, SortByCategoryName, SortByOwnerName}

// Valid reports whether k is SortNone or one of SortKeys.
func (k SortKey) Valid() bool {
	return k == SortNone || slices.Contains(SortKeys, k)
}

// SortDirection is the direction of the active sort.
type SortDirection string

const (
	DirectionNone SortDirection = ""
	Ascending     SortDirection = "asc"
	Descending    SortDirection = "desc"
)

// Valid reports whether d is one of the known directions.
func (d SortDirection) Valid() bool {
	switch d {
	case DirectionNone, Ascending, Descending:
		return true
	}
	return false
}

// ViewState is the set of user-chosen filter and sort selections.
type ViewState struct {
	// SelectedOwnerID is nil when products of every owner are shown.
	SelectedOwnerID *uint `json:"selected_owner_id"`
	// SelectedCategoryIDs is a set kept in ascending order.
	SelectedCategoryIDs []uint        `json:"selected_category_ids"`
	SearchTerm          string        `json:"search_term"`
	SortKey             SortKey       `json:"sort_key"`
	SortDirection       SortDirection `json:"sort_direction"`
}

// New returns the initial default state.
func New() ViewState {
	return ViewState{}
}

// clone copies the receiver, detaching the pointer and slice fields.
func (s ViewState) clone() ViewState {
	next := s
	if s.SelectedOwnerID != nil {
		id := *s.SelectedOwnerID
		next.SelectedOwnerID = &id
	}
	next.SelectedCategoryIDs = slices.Clone(s.SelectedCategoryIDs)
	return next
}

// SetOwnerFilter replaces the owner filter. A nil ownerID matches every owner.
func (s ViewState) SetOwnerFilter(ownerID *uint) ViewState {
	next := s.clone()
	next.SelectedOwnerID = nil
	if ownerID != nil {
		id := *ownerID
		next.SelectedOwnerID = &id
	}
	return next
}

// ToggleCategoryFilter adds categoryID to the selection, or removes it when
// already selected. The result is sorted without duplicates even when the
// receiver was decoded from unordered input.
func (s ViewState) ToggleCategoryFilter(categoryID uint) ViewState {
	next := s.clone()
	slices.Sort(next.SelectedCategoryIDs)
	next.SelectedCategoryIDs = slices.Compact(next.SelectedCategoryIDs)
	i, found := slices.BinarySearch(next.SelectedCategoryIDs, categoryID)
	if found {
		next.SelectedCategoryIDs = slices.Delete(next.SelectedCategoryIDs, i, i+1)
	} else {
		next.SelectedCategoryIDs = slices.Insert(next.SelectedCategoryIDs, i, categoryID)
	}
	if len(next.SelectedCategoryIDs) == 0 {
		next.SelectedCategoryIDs = nil
	}
	return next
}

// ClearCategoryFilters empties the category selection.
func (s ViewState) ClearCategoryFilters() ViewState {
	next := s.clone()
	next.SelectedCategoryIDs = nil
	return next
}

// SetSearchTerm stores text verbatim. No trimming is applied.
func (s ViewState) SetSearchTerm(text string) ViewState {
	next := s.clone()
	next.SearchTerm = text
	return next
}

// ClearSearchTerm empties the search term.
func (s ViewState) ClearSearchTerm() ViewState {
	return s.SetSearchTerm("")
}

// SetSort advances the sort cycle none -> asc -> desc -> none for key.
// Selecting a different key always starts at ascending; SortNone clears
// sorting.
func (s ViewState) SetSort(key SortKey) ViewState {
	next := s.clone()
	switch {
	case key == SortNone:
		next.SortKey, next.SortDirection = SortNone, DirectionNone
	case key != s.SortKey:
		next.SortKey, next.SortDirection = key, Ascending
	case s.SortDirection == Ascending:
		next.SortDirection = Descending
	case s.SortDirection == Descending:
		next.SortKey, next.SortDirection = SortNone, DirectionNone
	default:
		next.SortDirection = Ascending
	}
	return next
}

// ResetAll restores every field to its default.
func (s ViewState) ResetAll() ViewState {
	return New()
}

// HasOwnerFilter reports whether the owner predicate is active.
func (s ViewState) HasOwnerFilter() bool { return s.SelectedOwnerID != nil }

// HasCategoryFilter reports whether the category predicate is active.
func (s ViewState) HasCategoryFilter() bool { return len(s.SelectedCategoryIDs) > 0 }

// HasSearch reports whether the search predicate is active.
func (s ViewState) HasSearch() bool { return s.SearchTerm != "" }

// IsSorted reports whether a sort is applied.
func (s ViewState) IsSorted() bool { return s.SortKey != SortNone }

// IsCategorySelected reports whether categoryID is part of the selection.
func (s ViewState) IsCategorySelected(categoryID uint) bool {
	return slices.Contains(s.SelectedCategoryIDs, categoryID)
}

// IsOwnerSelected reports whether ownerID is the active owner filter.
func (s ViewState) IsOwnerSelected(ownerID uint) bool {
	return s.SelectedOwnerID != nil && *s.SelectedOwnerID == ownerID
}

// DirectionFor returns the current direction of key, or DirectionNone when
// the list is sorted by another key or not at all.
func (s ViewState) DirectionFor(key SortKey) SortDirection {
	if s.SortKey != key {
		return DirectionNone
	}
	return s.SortDirection
}

// Equal compares two states by value. A nil and an empty category selection
// are equal.
func (s ViewState) Equal(other ViewState) bool {
	if (s.SelectedOwnerID == nil) != (other.SelectedOwnerID == nil) {
		return false
	}
	if s.SelectedOwnerID != nil && *s.SelectedOwnerID != *other.SelectedOwnerID {
		return false
	}
	return slices.Equal(s.SelectedCategoryIDs, other.SelectedCategoryIDs) &&
		s.SearchTerm == other.SearchTerm &&
		s.SortKey == other.SortKey &&
		s.SortDirection == other.SortDirection
}

// Normalize returns a state that satisfies the ViewState invariants: the
// category selection is sorted without duplicates and a direction is only
// present together with a key. It is used for states built from external
// input rather than through transitions.
func (s ViewState) Normalize() ViewState {
	next := s.clone()
	slices.Sort(next.SelectedCategoryIDs)
	next.SelectedCategoryIDs = slices.Compact(next.SelectedCategoryIDs)
	if len(next.SelectedCategoryIDs) == 0 {
		next.SelectedCategoryIDs = nil
	}
	switch {
	case next.SortKey == SortNone:
		next.SortDirection = DirectionNone
	case next.SortDirection == DirectionNone:
		next.SortDirection = Ascending
	}
	return next
}

// MarshalJSON renders an empty category selection as [] rather than null.
func (s ViewState) MarshalJSON() ([]byte, error) {
	type plain ViewState
	out := plain(s)
	if out.SelectedCategoryIDs == nil {
		out.SelectedCategoryIDs = []uint{}
	}
	return json.Marshal(out)
}
