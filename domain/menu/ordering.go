package menu

import "strings"

// bucketSeparator joins a category slug and subcategory slug into the
// composite key used by Ordering.ItemOrder.
const bucketSeparator = "::"

// Ordering is the persisted tri-level display-order document for a
// tenant's menu. It never has to be complete: anything unlisted falls
// back to the grouper's alphabetical defaults, and entries referencing
// items that no longer exist are pruned lazily on the next repair.
type Ordering struct {
	CategoryOrder    []string            `json:"categoryOrder"`
	SubcategoryOrder map[string][]string `json:"subcategoryOrder"`
	ItemOrder        map[string][]string `json:"itemOrder"`
}

// BucketKey builds the composite ItemOrder key for a category/subcategory
// slug pair.
func BucketKey(categorySlug, subcategorySlug string) string {
	return categorySlug + bucketSeparator + subcategorySlug
}

// SplitBucketKey is the inverse of BucketKey. The second return is false
// when the key is not a well-formed composite.
func SplitBucketKey(key string) (categorySlug, subcategorySlug string, ok bool) {
	parts := strings.SplitN(key, bucketSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// NewOrdering returns an empty ordering document with allocated maps.
func NewOrdering() Ordering {
	return Ordering{
		CategoryOrder:    []string{},
		SubcategoryOrder: map[string][]string{},
		ItemOrder:        map[string][]string{},
	}
}

// Clone returns a deep copy so callers can mutate without aliasing the
// original document.
func (o Ordering) Clone() Ordering {
	out := Ordering{
		CategoryOrder:    append([]string(nil), o.CategoryOrder...),
		SubcategoryOrder: make(map[string][]string, len(o.SubcategoryOrder)),
		ItemOrder:        make(map[string][]string, len(o.ItemOrder)),
	}
	for k, v := range o.SubcategoryOrder {
		out.SubcategoryOrder[k] = append([]string(nil), v...)
	}
	for k, v := range o.ItemOrder {
		out.ItemOrder[k] = append([]string(nil), v...)
	}
	return out
}

// Equal reports structural equality. Nil and empty slices/maps compare
// equal so a freshly repaired document never looks different from a
// stored one for formatting reasons alone.
func (o Ordering) Equal(other Ordering) bool {
	if !equalLists(o.CategoryOrder, other.CategoryOrder) {
		return false
	}
	return equalListMaps(o.SubcategoryOrder, other.SubcategoryOrder) &&
		equalListMaps(o.ItemOrder, other.ItemOrder)
}

func equalLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalListMaps(a, b map[string][]string) bool {
	// Keys mapping to empty lists carry no ordering information, so they
	// are ignored on both sides.
	count := func(m map[string][]string) int {
		n := 0
		for _, v := range m {
			if len(v) > 0 {
				n++
			}
		}
		return n
	}
	if count(a) != count(b) {
		return false
	}
	for k, av := range a {
		if len(av) == 0 {
			continue
		}
		if !equalLists(av, b[k]) {
			return false
		}
	}
	return true
}
