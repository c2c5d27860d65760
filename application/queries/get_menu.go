package queries

import (
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"
)

// GetMenuQuery asks for a tenant's full menu view: the flat items, the
// repaired ordering document, and the grouped tree.
type GetMenuQuery struct {
	TenantID string
}

// Validate validates the GetMenuQuery
func (q GetMenuQuery) Validate() error {
	if q.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return nil
}

// GetMenuResult is the assembled menu view. Ordering is always the
// repaired document: any drift found during the read has already been
// written back by the handler.
type GetMenuResult struct {
	Items      []menu.Item     `json:"items"`
	Ordering   menu.Ordering   `json:"ordering"`
	Categories []menu.Category `json:"categories"`
}
