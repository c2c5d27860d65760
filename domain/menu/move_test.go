package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMoveCategory(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"drinks", "food", "desserts"}

	out, err := ApplyMove(ord, Move{Level: MoveCategory, ID: "desserts", Index: 0})

	require.NoError(t, err)
	assert.Equal(t, []string{"desserts", "drinks", "food"}, out.CategoryOrder)
	// The input document is not mutated.
	assert.Equal(t, []string{"drinks", "food", "desserts"}, ord.CategoryOrder)
}

func TestApplyMoveSubcategory(t *testing.T) {
	ord := NewOrdering()
	ord.SubcategoryOrder["food"] = []string{"mains", "sides", "specials"}

	out, err := ApplyMove(ord, Move{
		Level:        MoveSubcategory,
		ID:           "specials",
		CategorySlug: "food",
		Index:        1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"mains", "specials", "sides"}, out.SubcategoryOrder["food"])
}

func TestApplyMoveItemWithinBucket(t *testing.T) {
	ord := NewOrdering()
	ord.ItemOrder["food::mains"] = []string{"i1", "i2", "i3"}

	out, err := ApplyMove(ord, Move{
		Level:           MoveItem,
		ID:              "i3",
		CategorySlug:    "food",
		SubcategorySlug: "mains",
		Index:           0,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"i3", "i1", "i2"}, out.ItemOrder["food::mains"])
}

func TestApplyMoveItemAcrossBuckets(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains", "sides"}
	ord.ItemOrder["food::mains"] = []string{"i1", "i2"}
	ord.ItemOrder["food::sides"] = []string{"i3"}

	out, err := ApplyMove(ord, Move{
		Level:             MoveItem,
		ID:                "i1",
		CategorySlug:      "food",
		SubcategorySlug:   "mains",
		ToSubcategorySlug: "sides",
		Index:             1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"i2"}, out.ItemOrder["food::mains"])
	assert.Equal(t, []string{"i3", "i1"}, out.ItemOrder["food::sides"])
}

func TestApplyMoveItemIntoUnknownBucketSurfacesIt(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"food"}
	ord.SubcategoryOrder["food"] = []string{"mains"}
	ord.ItemOrder["food::mains"] = []string{"i1"}

	out, err := ApplyMove(ord, Move{
		Level:             MoveItem,
		ID:                "i1",
		CategorySlug:      "food",
		SubcategorySlug:   "mains",
		ToCategorySlug:    "drinks",
		ToSubcategorySlug: "hot",
		Index:             0,
	})

	require.NoError(t, err)
	assert.Empty(t, out.ItemOrder["food::mains"])
	assert.Equal(t, []string{"i1"}, out.ItemOrder["drinks::hot"])
	// Destination category and subcategory are appended so the moved item
	// does not trail at a repaired default position.
	assert.Equal(t, []string{"food", "drinks"}, out.CategoryOrder)
	assert.Equal(t, []string{"hot"}, out.SubcategoryOrder["drinks"])
}

func TestApplyMoveClampsIndex(t *testing.T) {
	ord := NewOrdering()
	ord.CategoryOrder = []string{"a", "b", "c"}

	out, err := ApplyMove(ord, Move{Level: MoveCategory, ID: "a", Index: 99})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, out.CategoryOrder)

	out, err = ApplyMove(ord, Move{Level: MoveCategory, ID: "c", Index: -5})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, out.CategoryOrder)
}

func TestApplyMoveValidation(t *testing.T) {
	ord := NewOrdering()

	_, err := ApplyMove(ord, Move{Level: MoveCategory})
	assert.Error(t, err)

	_, err = ApplyMove(ord, Move{Level: MoveSubcategory, ID: "sides"})
	assert.Error(t, err)

	_, err = ApplyMove(ord, Move{Level: MoveItem, ID: "i1", CategorySlug: "food"})
	assert.Error(t, err)

	_, err = ApplyMove(ord, Move{Level: "bogus", ID: "x"})
	assert.Error(t, err)
}

func TestMoveCrossesBuckets(t *testing.T) {
	same := Move{Level: MoveItem, ID: "i1", CategorySlug: "food", SubcategorySlug: "mains"}
	assert.False(t, same.CrossesBuckets())

	cross := Move{Level: MoveItem, ID: "i1", CategorySlug: "food", SubcategorySlug: "mains", ToSubcategorySlug: "sides"}
	assert.True(t, cross.CrossesBuckets())

	category := Move{Level: MoveCategory, ID: "food"}
	assert.False(t, category.CrossesBuckets())
}
