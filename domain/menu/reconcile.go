package menu

import "sort"

// Repair reconciles a possibly stale ordering document against the live
// item set and reports whether anything changed. At each level, persisted
// entries that still resolve to a live bucket are kept in order
// (deduplicated by first occurrence); the remaining valid slugs/ids are
// appended sorted lexicographically on the slug/id itself. Children are
// only recursed into for parents that survived.
//
// Repair is idempotent: repairing an already repaired document against
// the same item set returns it unchanged.
func Repair(items []Item, ord Ordering) (Ordering, bool) {
	catSlugs := map[string]bool{}
	subSlugs := map[string]map[string]bool{} // category slug -> sub slugs
	bucketIDs := map[string]map[string]bool{} // bucket key -> item ids

	for _, it := range items {
		cat := it.CategorySlug()
		sub := it.SubcategorySlug()
		catSlugs[cat] = true
		if subSlugs[cat] == nil {
			subSlugs[cat] = map[string]bool{}
		}
		subSlugs[cat][sub] = true
		key := BucketKey(cat, sub)
		if bucketIDs[key] == nil {
			bucketIDs[key] = map[string]bool{}
		}
		bucketIDs[key][it.ID] = true
	}

	repaired := NewOrdering()
	repaired.CategoryOrder = repairLevel(ord.CategoryOrder, catSlugs)

	for _, cat := range repaired.CategoryOrder {
		subs := repairLevel(ord.SubcategoryOrder[cat], subSlugs[cat])
		repaired.SubcategoryOrder[cat] = subs
		for _, sub := range subs {
			key := BucketKey(cat, sub)
			repaired.ItemOrder[key] = repairLevel(ord.ItemOrder[key], bucketIDs[key])
		}
	}

	return repaired, !repaired.Equal(ord)
}

// repairLevel keeps the still-valid prefix of a persisted list and appends
// the unlisted valid entries sorted ascending.
func repairLevel(persisted []string, valid map[string]bool) []string {
	out := make([]string, 0, len(valid))
	taken := make(map[string]bool, len(valid))

	for _, key := range persisted {
		if valid[key] && !taken[key] {
			out = append(out, key)
			taken[key] = true
		}
	}

	rest := make([]string, 0, len(valid)-len(out))
	for key := range valid {
		if !taken[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(out, rest...)
}

// EnsureItem appends an item's category, subcategory and id to the
// ordering wherever they are missing. New entries always land at the end
// of their level, never interleaved. Reports whether the document changed.
func EnsureItem(ord Ordering, it Item) (Ordering, bool) {
	cat := it.CategorySlug()
	sub := it.SubcategorySlug()
	key := it.Bucket()

	out := ord.Clone()
	if out.SubcategoryOrder == nil {
		out.SubcategoryOrder = map[string][]string{}
	}
	if out.ItemOrder == nil {
		out.ItemOrder = map[string][]string{}
	}

	changed := false
	if !containsString(out.CategoryOrder, cat) {
		out.CategoryOrder = append(out.CategoryOrder, cat)
		changed = true
	}
	if !containsString(out.SubcategoryOrder[cat], sub) {
		out.SubcategoryOrder[cat] = append(out.SubcategoryOrder[cat], sub)
		changed = true
	}
	if it.ID != "" && !containsString(out.ItemOrder[key], it.ID) {
		out.ItemOrder[key] = append(out.ItemOrder[key], it.ID)
		changed = true
	}
	return out, changed
}

// RemoveItem drops an item's id from its bucket list. Category and
// subcategory entries left empty are not pruned here; the next Repair
// takes care of them.
func RemoveItem(ord Ordering, it Item) (Ordering, bool) {
	key := it.Bucket()
	list := ord.ItemOrder[key]
	if !containsString(list, it.ID) {
		return ord, false
	}

	out := ord.Clone()
	out.ItemOrder[key] = removeString(out.ItemOrder[key], it.ID)
	return out, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

func insertString(list []string, s string, index int) []string {
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list[:index]...)
	out = append(out, s)
	return append(out, list[index:]...)
}
