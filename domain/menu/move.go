package menu

import (
	"fmt"

	pkgerrors "mentra-backend/pkg/errors"
)

// MoveLevel selects which level of the menu a drag gesture operates on.
type MoveLevel string

const (
	MoveCategory    MoveLevel = "category"
	MoveSubcategory MoveLevel = "subcategory"
	MoveItem        MoveLevel = "item"
)

// Move describes a single drag-and-drop gesture: an entry removed from its
// source list and inserted at Index in the destination list. For items the
// destination bucket may differ from the source bucket; categories and
// subcategories only move within their own parent.
type Move struct {
	Level MoveLevel

	// ID is the category slug, subcategory slug, or item id being moved.
	ID string

	// CategorySlug scopes subcategory moves and names the source category
	// of an item move.
	CategorySlug    string
	SubcategorySlug string

	// ToCategorySlug and ToSubcategorySlug name the destination bucket of
	// an item move. Blank means same bucket.
	ToCategorySlug    string
	ToSubcategorySlug string

	// Index is the target position within the destination list. Out of
	// range values are clamped.
	Index int
}

// Validate checks the move is well formed for its level.
func (m Move) Validate() error {
	if m.ID == "" {
		return pkgerrors.NewValidationError("move target cannot be empty")
	}
	switch m.Level {
	case MoveCategory:
	case MoveSubcategory:
		if m.CategorySlug == "" {
			return pkgerrors.NewValidationError("subcategory move requires a category")
		}
	case MoveItem:
		if m.CategorySlug == "" || m.SubcategorySlug == "" {
			return pkgerrors.NewValidationError("item move requires a source bucket")
		}
	default:
		return pkgerrors.NewValidationError(fmt.Sprintf("unknown move level %q", m.Level))
	}
	return nil
}

// CrossesBuckets reports whether an item move lands in a different bucket
// than it started in.
func (m Move) CrossesBuckets() bool {
	if m.Level != MoveItem {
		return false
	}
	from := BucketKey(m.CategorySlug, m.SubcategorySlug)
	return m.destBucket() != from
}

func (m Move) destCategory() string {
	if m.ToCategorySlug != "" {
		return m.ToCategorySlug
	}
	return m.CategorySlug
}

func (m Move) destSubcategory() string {
	if m.ToSubcategorySlug != "" {
		return m.ToSubcategorySlug
	}
	return m.SubcategorySlug
}

func (m Move) destBucket() string {
	return BucketKey(m.destCategory(), m.destSubcategory())
}

// ApplyMove rewrites the ordering document for a single drag gesture:
// remove the moved entry from its source list, insert it at the target
// index in the destination list. The caller is responsible for rewriting a
// cross-bucket item's own category/subcategory fields alongside this, so
// the next repair pass does not undo the move.
func ApplyMove(ord Ordering, m Move) (Ordering, error) {
	if err := m.Validate(); err != nil {
		return ord, err
	}

	out := ord.Clone()
	if out.SubcategoryOrder == nil {
		out.SubcategoryOrder = map[string][]string{}
	}
	if out.ItemOrder == nil {
		out.ItemOrder = map[string][]string{}
	}

	switch m.Level {
	case MoveCategory:
		out.CategoryOrder = insertString(removeString(out.CategoryOrder, m.ID), m.ID, m.Index)

	case MoveSubcategory:
		list := removeString(out.SubcategoryOrder[m.CategorySlug], m.ID)
		out.SubcategoryOrder[m.CategorySlug] = insertString(list, m.ID, m.Index)

	case MoveItem:
		from := BucketKey(m.CategorySlug, m.SubcategorySlug)
		to := m.destBucket()
		out.ItemOrder[from] = removeString(out.ItemOrder[from], m.ID)
		out.ItemOrder[to] = insertString(removeString(out.ItemOrder[to], m.ID), m.ID, m.Index)

		// A move into a bucket the ordering has never seen must surface
		// the destination category/subcategory too, or the item would
		// trail at the repaired default position.
		if !containsString(out.CategoryOrder, m.destCategory()) {
			out.CategoryOrder = append(out.CategoryOrder, m.destCategory())
		}
		if !containsString(out.SubcategoryOrder[m.destCategory()], m.destSubcategory()) {
			out.SubcategoryOrder[m.destCategory()] = append(out.SubcategoryOrder[m.destCategory()], m.destSubcategory())
		}
	}

	return out, nil
}
