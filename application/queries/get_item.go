package queries

import pkgerrors "mentra-backend/pkg/errors"

// GetItemQuery asks for a single item.
type GetItemQuery struct {
	TenantID string
	ItemID   string
}

// Validate validates the GetItemQuery
func (q GetItemQuery) Validate() error {
	if q.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	if q.ItemID == "" {
		return pkgerrors.NewValidationError("item ID is required")
	}
	return nil
}

// ListItemsQuery asks for every item of a tenant, unordered.
type ListItemsQuery struct {
	TenantID string
}

// Validate validates the ListItemsQuery
func (q ListItemsQuery) Validate() error {
	if q.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return nil
}
