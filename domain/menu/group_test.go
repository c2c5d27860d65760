package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, title, category, subcategory string) Item {
	return Item{
		ID:          id,
		TenantID:    "tenant-1",
		Title:       title,
		Category:    category,
		Subcategory: subcategory,
	}
}

func TestBuildTreeGroupsByNormalizedLabels(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Fries", "food", "Mains"),
	}

	tree := BuildTree(items, NewOrdering())

	require.Len(t, tree, 1)
	assert.Equal(t, "food", tree[0].Slug)
	// First label seen wins for display.
	assert.Equal(t, "Food", tree[0].Label)

	require.Len(t, tree[0].Subcategories, 1)
	sub := tree[0].Subcategories[0]
	assert.Equal(t, "mains", sub.Slug)
	assert.Equal(t, "Mains", sub.Label)
	require.Len(t, sub.Items, 2)
	assert.Equal(t, "i1", sub.Items[0].ID)
	assert.Equal(t, "i2", sub.Items[1].ID)
}

func TestBuildTreeDefaultBuckets(t *testing.T) {
	items := []Item{
		item("i1", "Orphan", "", ""),
		item("i2", "Coffee", "Drinks", ""),
	}

	tree := BuildTree(items, NewOrdering())

	require.Len(t, tree, 2)
	// Alphabetical by label: Drinks before Uncategorized.
	assert.Equal(t, "Drinks", tree[0].Label)
	assert.Equal(t, DefaultCategoryLabel, tree[1].Label)

	// Blank subcategory falls back to the category label, then "General".
	require.Len(t, tree[0].Subcategories, 1)
	assert.Equal(t, "Drinks", tree[0].Subcategories[0].Label)
	require.Len(t, tree[1].Subcategories, 1)
	assert.Equal(t, DefaultSubcategoryLabel, tree[1].Subcategories[0].Label)
}

func TestBuildTreeAppliesPersistedOrdering(t *testing.T) {
	items := []Item{
		item("i1", "Apple Pie", "Desserts", "Baked"),
		item("i2", "Burger", "Food", "Mains"),
		item("i3", "Coffee", "Drinks", "Hot"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food", "drinks"}

	tree := BuildTree(items, ord)

	require.Len(t, tree, 3)
	// Persisted prefix first, unlisted remainder appended alphabetically.
	assert.Equal(t, "food", tree[0].Slug)
	assert.Equal(t, "drinks", tree[1].Slug)
	assert.Equal(t, "desserts", tree[2].Slug)
}

func TestBuildTreeIgnoresDeadAndDuplicatePersistedEntries(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Salad", "Food", "Sides"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks", "food", "food"}
	ord.SubcategoryOrder["food"] = []string{"sides", "gone", "sides", "mains"}

	tree := BuildTree(items, ord)

	require.Len(t, tree, 1)
	assert.Equal(t, "food", tree[0].Slug)
	require.Len(t, tree[0].Subcategories, 2)
	assert.Equal(t, "sides", tree[0].Subcategories[0].Slug)
	assert.Equal(t, "mains", tree[0].Subcategories[1].Slug)
}

func TestBuildTreeItemOrderWithinBucket(t *testing.T) {
	items := []Item{
		item("i1", "Alpha", "Food", "Mains"),
		item("i2", "Bravo", "Food", "Mains"),
		item("i3", "Charlie", "Food", "Mains"),
	}
	ord := NewOrdering()
	ord.ItemOrder["food::mains"] = []string{"i3", "missing", "i1"}

	tree := BuildTree(items, ord)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Subcategories, 1)
	got := tree[0].Subcategories[0].Items
	require.Len(t, got, 3)
	// Persisted prefix i3, i1; i2 appended as the title-sorted remainder.
	assert.Equal(t, "i3", got[0].ID)
	assert.Equal(t, "i1", got[1].ID)
	assert.Equal(t, "i2", got[2].ID)
}

func TestBuildTreeEmptyInput(t *testing.T) {
	tree := BuildTree(nil, NewOrdering())
	assert.Empty(t, tree)
}

func TestBuildTreeDeterministic(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Coffee", "Drinks", "Hot"),
		item("i3", "Tea", "Drinks", "Hot"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks"}

	first := BuildTree(items, ord)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildTree(items, ord))
	}
}

func TestBuildTreeFlattenPreservesItemIDSet(t *testing.T) {
	// A messy input: default buckets, colliding labels, and an ordering
	// full of stale references. Flattening the tree must yield exactly
	// the input ids, with no loss and no duplication.
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Fries", "food", ""),
		item("i3", "Coffee", "", ""),
		item("i4", "Tea", "Drinks", "Hot"),
		item("i5", "Cake", "Desserts", "Sweet"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"gone", "drinks", "food", "food"}
	ord.SubcategoryOrder["food"] = []string{"mains", "mains", "dead"}
	ord.ItemOrder["food::mains"] = []string{"i1", "ghost", "i1"}

	tree := BuildTree(items, ord)

	var got []string
	for _, cat := range tree {
		for _, sub := range cat.Subcategories {
			for _, it := range sub.Items {
				got = append(got, it.ID)
			}
		}
	}
	assert.ElementsMatch(t, []string{"i1", "i2", "i3", "i4", "i5"}, got)
}
