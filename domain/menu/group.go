package menu

import "sort"

// Subcategory is a derived view grouping: an ordered run of items under a
// slug. It is rebuilt on every read and carries no identity beyond the slug.
type Subcategory struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Category is the top level of the derived menu tree.
type Category struct {
	Slug          string        `json:"slug"`
	Label         string        `json:"label"`
	Subcategories []Subcategory `json:"subcategories"`
}

// BuildTree groups a flat item list into the category/subcategory/item
// tree. Each level is ordered by the persisted ordering document first
// (invalid and duplicate entries dropped, first occurrence wins) and the
// remainder is appended sorted case-sensitively by display label, items by
// title. BuildTree never fails: blank labels degrade to the default
// buckets and an empty input yields an empty tree.
func BuildTree(items []Item, ord Ordering) []Category {
	type bucket struct {
		label string
		items []Item
	}

	catLabels := map[string]string{}     // category slug -> first label seen
	subBuckets := map[string]map[string]*bucket{} // category slug -> sub slug -> bucket

	for _, it := range items {
		catSlug := it.CategorySlug()
		subSlug := it.SubcategorySlug()

		if _, seen := catLabels[catSlug]; !seen {
			catLabels[catSlug] = it.CategoryLabel()
		}
		subs := subBuckets[catSlug]
		if subs == nil {
			subs = map[string]*bucket{}
			subBuckets[catSlug] = subs
		}
		b := subs[subSlug]
		if b == nil {
			b = &bucket{label: it.SubcategoryLabel()}
			subs[subSlug] = b
		}
		b.items = append(b.items, it)
	}

	catSlugs := twoPhaseOrder(ord.CategoryOrder, keysOf(subBuckets), func(a, b string) bool {
		return catLabels[a] < catLabels[b]
	})

	tree := make([]Category, 0, len(catSlugs))
	for _, catSlug := range catSlugs {
		subs := subBuckets[catSlug]

		subSlugs := twoPhaseOrder(ord.SubcategoryOrder[catSlug], keysOf(subs), func(a, b string) bool {
			return subs[a].label < subs[b].label
		})

		cat := Category{
			Slug:          catSlug,
			Label:         catLabels[catSlug],
			Subcategories: make([]Subcategory, 0, len(subSlugs)),
		}
		for _, subSlug := range subSlugs {
			b := subs[subSlug]
			cat.Subcategories = append(cat.Subcategories, Subcategory{
				Slug:  subSlug,
				Label: b.label,
				Items: orderItems(b.items, ord.ItemOrder[BucketKey(catSlug, subSlug)]),
			})
		}
		tree = append(tree, cat)
	}
	return tree
}

// twoPhaseOrder applies the persisted-prefix-then-sorted-remainder rule
// shared by all three levels: persisted entries that still exist are kept
// in order (deduplicated by first occurrence), then every remaining valid
// key is appended in the order given by less.
func twoPhaseOrder(persisted []string, valid map[string]bool, less func(a, b string) bool) []string {
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
	sort.Slice(rest, func(i, j int) bool { return less(rest[i], rest[j]) })

	return append(out, rest...)
}

// orderItems applies the two-phase rule at the item level, where the
// remainder falls back to a case-sensitive title sort.
func orderItems(items []Item, persisted []string) []Item {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		if _, dup := byID[it.ID]; !dup {
			byID[it.ID] = it
		}
	}

	out := make([]Item, 0, len(items))
	taken := make(map[string]bool, len(items))
	for _, id := range persisted {
		if it, ok := byID[id]; ok && !taken[id] {
			out = append(out, it)
			taken[id] = true
		}
	}

	rest := make([]Item, 0, len(items)-len(out))
	for _, it := range items {
		if !taken[it.ID] {
			rest = append(rest, it)
			taken[it.ID] = true
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Title < rest[j].Title })

	return append(out, rest...)
}

func keysOf[V any](m map[string]V) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}
