package queries

import pkgerrors "mentra-backend/pkg/errors"

// GetPlaylistQuery asks for the tenant's training playlist, normalized
// against the live item set.
type GetPlaylistQuery struct {
	TenantID string
}

// Validate validates the GetPlaylistQuery
func (q GetPlaylistQuery) Validate() error {
	if q.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return nil
}

// GetProgressQuery asks for one user's training progress.
type GetProgressQuery struct {
	TenantID string
	UserID   string
}

// Validate validates the GetProgressQuery
func (q GetProgressQuery) Validate() error {
	if q.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	return nil
}
