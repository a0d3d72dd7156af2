package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/testutil"
	"catalog/internal/viewstate"
)

func TestBuildPanel_Default(t *testing.T) {
	fx := testutil.SampleFixtures()
	panel := BuildPanel(fx.Users, fx.Categories, viewstate.New())

	assert.True(t, panel.AllOwners)
	assert.True(t, panel.AllCategories)
	assert.False(t, panel.SearchClearable)
	require.Len(t, panel.Owners, 2)
	require.Len(t, panel.Categories, 2)
	for _, o := range panel.Owners {
		assert.False(t, o.Selected)
	}
	for _, c := range panel.Categories {
		assert.False(t, c.Selected)
	}

	require.Len(t, panel.Columns, 4)
	labels := []string{}
	for _, col := range panel.Columns {
		labels = append(labels, col.Label)
		assert.Equal(t, viewstate.DirectionNone, col.Direction)
	}
	assert.Equal(t, []string{"ID", "Product", "Category", "User"}, labels)
}

func TestBuildPanel_MarksSelections(t *testing.T) {
	fx := testutil.SampleFixtures()
	state := viewstate.New().
		SetOwnerFilter(ptr(testutil.OwnerAnna)).
		ToggleCategoryFilter(testutil.CategoryFruits).
		SetSearchTerm("ban").
		SetSort(viewstate.SortByOwnerName).
		SetSort(viewstate.SortByOwnerName)

	panel := BuildPanel(fx.Users, fx.Categories, state)

	assert.False(t, panel.AllOwners)
	assert.False(t, panel.Owners[0].Selected)
	assert.True(t, panel.Owners[1].Selected)
	assert.Equal(t, "f", string(panel.Owners[1].Sex))

	assert.False(t, panel.AllCategories)
	assert.True(t, panel.Categories[0].Selected)
	assert.False(t, panel.Categories[1].Selected)

	assert.Equal(t, "ban", panel.SearchTerm)
	assert.True(t, panel.SearchClearable)

	for _, col := range panel.Columns {
		if col.Key == viewstate.SortByOwnerName {
			assert.Equal(t, viewstate.Descending, col.Direction)
		} else {
			assert.Equal(t, viewstate.DirectionNone, col.Direction)
		}
	}
}

func TestBuildPanel_UnsortedSelection(t *testing.T) {
	fx := testutil.SampleFixtures()
	state := viewstate.ViewState{
		SelectedCategoryIDs: []uint{testutil.CategoryFruits2, testutil.CategoryFruits},
	}

	panel := BuildPanel(fx.Users, fx.Categories, state)

	assert.False(t, panel.AllCategories)
	for _, c := range panel.Categories {
		assert.True(t, c.Selected, "category %d should be selected", c.ID)
	}
}
