package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairDropsDeadCategories(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks", "food"}
	ord.SubcategoryOrder["drinks"] = []string{"hot"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	repaired, changed := Repair(items, ord)

	assert.True(t, changed)
	assert.Equal(t, []string{"food"}, repaired.CategoryOrder)
	assert.Equal(t, []string{"mains"}, repaired.SubcategoryOrder["food"])
	assert.Equal(t, []string{"i1"}, repaired.ItemOrder["food::mains"])
	// The dead category's children are gone with it.
	assert.Empty(t, repaired.SubcategoryOrder["drinks"])
}

func TestRepairAppendsUnlistedEntriesSorted(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Coffee", "Drinks", "Hot"),
		item("i3", "Cake", "Desserts", "Baked"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}

	repaired, changed := Repair(items, ord)

	assert.True(t, changed)
	// Valid prefix kept, remainder slug-sorted.
	assert.Equal(t, []string{"food", "desserts", "drinks"}, repaired.CategoryOrder)
	// Children of newly surfaced categories are filled in too.
	assert.Equal(t, []string{"hot"}, repaired.SubcategoryOrder["drinks"])
	assert.Equal(t, []string{"i2"}, repaired.ItemOrder["drinks::hot"])
}

func TestRepairDeduplicatesByFirstOccurrence(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Coffee", "Drinks", "Hot"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks", "food", "drinks", "food"}

	repaired, changed := Repair(items, ord)

	assert.True(t, changed)
	assert.Equal(t, []string{"drinks", "food"}, repaired.CategoryOrder)
}

func TestRepairIdempotent(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
		item("i2", "Fries", "Food", "Sides"),
		item("i3", "Coffee", "Drinks", "Hot"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks", "gone"}

	once, changed := Repair(items, ord)
	require.True(t, changed)

	twice, changedAgain := Repair(items, once)
	assert.False(t, changedAgain)
	assert.True(t, once.Equal(twice))
}

func TestRepairCleanDocumentUnchanged(t *testing.T) {
	items := []Item{
		item("i1", "Burger", "Food", "Mains"),
	}
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	repaired, changed := Repair(items, ord)

	assert.False(t, changed)
	assert.True(t, ord.Equal(repaired))
}

func TestRepairEmptyItems(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	repaired, changed := Repair(nil, ord)

	assert.True(t, changed)
	assert.Empty(t, repaired.CategoryOrder)
}

func TestEnsureItemAppendsMissingEntries(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	out, changed := EnsureItem(ord, item("i2", "Fries", "Food", "Sides"))

	assert.True(t, changed)
	assert.Equal(t, []string{"food"}, out.CategoryOrder)
	assert.Equal(t, []string{"mains", "sides"}, out.SubcategoryOrder["food"])
	assert.Equal(t, []string{"i2"}, out.ItemOrder["food::sides"])
	// Existing bucket untouched.
	assert.Equal(t, []string{"i1"}, out.ItemOrder["food::mains"])
}

func TestEnsureItemNoChangeWhenPresent(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	out, changed := EnsureItem(ord, item("i1", "Burger", "Food", "Mains"))

	assert.False(t, changed)
	assert.True(t, ord.Equal(out))
}

func TestRemoveItemDropsOnlyTargetID(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"a", "b"}

	out, changed := RemoveItem(ord, item("a", "Burger", "Food", "Mains"))

	assert.True(t, changed)
	assert.Equal(t, []string{"b"}, out.ItemOrder["food::mains"])
	// Bucket entries stay until the next repair pass.
	assert.Equal(t, []string{"food"}, out.CategoryOrder)
	assert.Equal(t, []string{"mains"}, out.SubcategoryOrder["food"])
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	ord := NewOrdering()
	ord.ItemOrder["food::mains"] = []string{"b"}

	out, changed := RemoveItem(ord, item("a", "Burger", "Food", "Mains"))

	assert.False(t, changed)
	assert.Equal(t, []string{"b"}, out.ItemOrder["food::mains"])
}
