package derive

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	apperrors "catalog/internal/errors"
	"catalog/internal/viewstate"
)

type comparator func(a, b EnrichedProduct) int

// comparators maps each sortable column to a typed comparison of the field
// it names, including fields of the joined category and owner.
var comparators = map[viewstate.SortKey]comparator{
	viewstate.SortByID: func(a, b EnrichedProduct) int {
		return cmp.Compare(a.ID, b.ID)
	},
	viewstate.SortByName: func(a, b EnrichedProduct) int {
		return strings.Compare(a.Name, b.Name)
	},
	viewstate.SortByCategoryName: func(a, b EnrichedProduct) int {
		return strings.Compare(a.Category.Title, b.Category.Title)
	},
	viewstate.SortByOwnerName: func(a, b EnrichedProduct) int {
		return strings.Compare(a.Owner.Name, b.Owner.Name)
	},
}

// Sort orders rows in place by the state's sort key and direction. Equal
// keys keep their relative order. Without a sort key rows are left as they
// are.
func Sort(rows []EnrichedProduct, state viewstate.ViewState) error {
	if !state.IsSorted() {
		return nil
	}
	compare, ok := comparators[state.SortKey]
	if !ok {
		return apperrors.WithMessage(apperrors.ErrInvalidSort, fmt.Sprintf("unsupported sort key %q", state.SortKey))
	}

	switch state.SortDirection {
	case viewstate.Ascending, viewstate.DirectionNone:
		slices.SortStableFunc(rows, compare)
	case viewstate.Descending:
		slices.SortStableFunc(rows, func(a, b EnrichedProduct) int {
			return compare(b, a)
		})
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidSort, fmt.Sprintf("unsupported sort direction %q", state.SortDirection))
	}
	return nil
}
