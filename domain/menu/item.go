// Package menu holds the tenant menu domain: training card items, the
// persisted ordering document, and the pure grouping/reconciliation logic
// that keeps the two consistent.
package menu

import (
	"strings"
	"time"

	pkgerrors "mentra-backend/pkg/errors"
)

// Default bucket labels for items with blank category/subcategory fields.
const (
	DefaultCategoryLabel    = "Uncategorized"
	DefaultSubcategoryLabel = "General"
)

// Item is a single training card. IDs are assigned by the application
// layer on first upsert; timestamps are advisory only.
type Item struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Steps       []string  `json:"steps,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Validate checks the invariants an item must satisfy before persistence.
func (it Item) Validate() error {
	if strings.TrimSpace(it.TenantID) == "" {
		return pkgerrors.NewValidationError("tenant ID cannot be empty")
	}
	if strings.TrimSpace(it.Title) == "" {
		return pkgerrors.NewValidationError("title cannot be empty")
	}
	return nil
}

// CategoryLabel returns the display label for the item's category,
// falling back to the default bucket when blank.
func (it Item) CategoryLabel() string {
	if label := strings.TrimSpace(it.Category); label != "" {
		return label
	}
	return DefaultCategoryLabel
}

// SubcategoryLabel returns the display label for the item's subcategory.
// The fallback chain is subcategory, then category, then "General".
func (it Item) SubcategoryLabel() string {
	if label := strings.TrimSpace(it.Subcategory); label != "" {
		return label
	}
	if label := strings.TrimSpace(it.Category); label != "" {
		return label
	}
	return DefaultSubcategoryLabel
}

// CategorySlug returns the slug the item buckets under at the top level.
func (it Item) CategorySlug() string {
	return Slugify(it.CategoryLabel())
}

// SubcategorySlug returns the slug the item buckets under within its category.
func (it Item) SubcategorySlug() string {
	return Slugify(it.SubcategoryLabel())
}

// Bucket returns the composite ordering key the item's ids are listed under.
func (it Item) Bucket() string {
	return BucketKey(it.CategorySlug(), it.SubcategorySlug())
}
