package viewstate

// Store exclusively owns one ViewState and changes it only through the
// enumerated operations. It is not safe for concurrent use; callers that
// share a Store serialise access themselves.
type Store struct {
	state ViewState
}

// NewStore returns a Store holding the default state.
func NewStore() *Store {
	return &Store{state: New()}
}

// State returns a copy of the current state.
func (st *Store) State() ViewState {
	return st.state.clone()
}

// Dispatch applies a and returns the new state. On error the held state is
// left unchanged.
func (st *Store) Dispatch(a Action) (ViewState, error) {
	next, err := Apply(st.state, a)
	if err != nil {
		return st.State(), err
	}
	st.state = next
	return st.State(), nil
}

// SetOwnerFilter replaces the owner filter.
func (st *Store) SetOwnerFilter(ownerID *uint) ViewState {
	st.state = st.state.SetOwnerFilter(ownerID)
	return st.State()
}

// ToggleCategoryFilter toggles categoryID in the category selection.
func (st *Store) ToggleCategoryFilter(categoryID uint) ViewState {
	st.state = st.state.ToggleCategoryFilter(categoryID)
	return st.State()
}

// ClearCategoryFilters empties the category selection.
func (st *Store) ClearCategoryFilters() ViewState {
	st.state = st.state.ClearCategoryFilters()
	return st.State()
}

// SetSearchTerm replaces the search term verbatim.
func (st *Store) SetSearchTerm(text string) ViewState {
	st.state = st.state.SetSearchTerm(text)
	return st.State()
}

// ClearSearchTerm empties the search term.
func (st *Store) ClearSearchTerm() ViewState {
	st.state = st.state.ClearSearchTerm()
	return st.State()
}

// SetSort advances the sort cycle for key.
func (st *Store) SetSort(key SortKey) ViewState {
	st.state = st.state.SetSort(key)
	return st.State()
}

// ResetAll restores the default state.
func (st *Store) ResetAll() ViewState {
	st.state = st.state.ResetAll()
	return st.State()
}
