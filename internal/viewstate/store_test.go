package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "catalog/internal/errors"
)

func TestStore_StartsAtDefault(t *testing.T) {
	st := NewStore()

	assert.True(t, st.State().Equal(New()))
}

func TestStore_Operations(t *testing.T) {
	st := NewStore()

	st.SetOwnerFilter(ptr(200))
	st.ToggleCategoryFilter(20)
	st.ToggleCategoryFilter(10)
	st.SetSearchTerm("app")
	got := st.SetSort(SortByName)

	require.NotNil(t, got.SelectedOwnerID)
	assert.Equal(t, uint(200), *got.SelectedOwnerID)
	assert.Equal(t, []uint{10, 20}, got.SelectedCategoryIDs)
	assert.Equal(t, "app", got.SearchTerm)
	assert.Equal(t, Ascending, got.SortDirection)

	got = st.ClearCategoryFilters()
	assert.False(t, got.HasCategoryFilter())

	got = st.ClearSearchTerm()
	assert.False(t, got.HasSearch())

	got = st.ResetAll()
	assert.True(t, got.Equal(New()))
	assert.True(t, st.State().Equal(New()))
}

func TestStore_StateIsACopy(t *testing.T) {
	st := NewStore()
	st.ToggleCategoryFilter(1)

	snapshot := st.State()
	snapshot.SelectedCategoryIDs[0] = 99
	snapshot.SearchTerm = "changed"

	assert.Equal(t, []uint{1}, st.State().SelectedCategoryIDs)
	assert.Equal(t, "", st.State().SearchTerm)
}

func TestStore_Dispatch(t *testing.T) {
	st := NewStore()

	got, err := st.Dispatch(Action{Type: ActionSetSort, SortKey: SortByOwnerName})
	require.NoError(t, err)
	assert.Equal(t, SortByOwnerName, got.SortKey)

	got, err = st.Dispatch(Action{Type: ActionSetSort, SortKey: SortByOwnerName})
	require.NoError(t, err)
	assert.Equal(t, Descending, got.SortDirection)
}

func TestStore_DispatchErrorKeepsState(t *testing.T) {
	st := NewStore()
	st.SetSearchTerm("bread")

	_, err := st.Dispatch(Action{Type: "rename"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAction)

	_, err = st.Dispatch(Action{Type: ActionSetSort, SortKey: "price"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSort)

	assert.Equal(t, "bread", st.State().SearchTerm)
	assert.False(t, st.State().IsSorted())
}
