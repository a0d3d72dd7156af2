package derive

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"catalog/internal/viewstate"
)

// Filter keeps the rows that pass every active predicate of state: owner,
// category membership and a case-folded substring match on the product
// name. Inactive predicates pass everything. The input slice is not modified.
func Filter(rows []EnrichedProduct, state viewstate.ViewState) []EnrichedProduct {
	// A Caser carries state and is not safe to share between goroutines.
	fold := cases.Fold()
	term := fold.String(state.SearchTerm)

	out := make([]EnrichedProduct, 0, len(rows))
	for _, row := range rows {
		if state.HasOwnerFilter() && row.Owner.ID != *state.SelectedOwnerID {
			continue
		}
		if state.HasCategoryFilter() && !slices.Contains(state.SelectedCategoryIDs, row.CategoryID) {
			continue
		}
		if term != "" && !strings.Contains(fold.String(row.Name), term) {
			continue
		}
		out = append(out, row)
	}
	return out
}
