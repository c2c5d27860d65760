package commands

import (
	"context"
	"time"

	"mentra-backend/application/ports"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"go.uber.org/zap"
)

// SaveProgressCommand replaces one user's training progress record.
// References to items that no longer exist are pruned before storing.
type SaveProgressCommand struct {
	TenantID     string         `json:"tenant_id" validate:"required"`
	UserID       string         `json:"user_id" validate:"required"`
	CompletedIDs []string       `json:"completed_ids" validate:"max=1000"`
	StepPosition map[string]int `json:"step_position"`
}

// Validate validates the SaveProgressCommand
func (c SaveProgressCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	for itemID, step := range c.StepPosition {
		if step < 0 {
			return pkgerrors.NewValidationError("step position for " + itemID + " cannot be negative")
		}
	}
	return nil
}

// SaveProgressHandler handles the SaveProgressCommand
type SaveProgressHandler struct {
	itemRepo     ports.ItemRepository
	progressRepo ports.ProgressRepository
	logger       *zap.Logger
}

// NewSaveProgressHandler creates a new handler instance
func NewSaveProgressHandler(
	itemRepo ports.ItemRepository,
	progressRepo ports.ProgressRepository,
	logger *zap.Logger,
) *SaveProgressHandler {
	return &SaveProgressHandler{
		itemRepo:     itemRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// Handle prunes and stores the progress record.
func (h *SaveProgressHandler) Handle(ctx context.Context, cmd SaveProgressCommand) error {
	items, err := h.itemRepo.ListByTenant(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to list items")
	}

	progress := menu.Progress{
		TenantID:     cmd.TenantID,
		UserID:       cmd.UserID,
		CompletedIDs: cmd.CompletedIDs,
		StepPosition: cmd.StepPosition,
		UpdatedAt:    time.Now().UTC(),
	}
	progress, pruned := progress.Prune(items)

	if err := h.progressRepo.Put(ctx, progress); err != nil {
		return pkgerrors.Wrap(err, "failed to persist progress")
	}

	h.logger.Debug("progress saved",
		zap.String("tenantID", cmd.TenantID),
		zap.String("userID", cmd.UserID),
		zap.Int("completed", len(progress.CompletedIDs)),
		zap.Bool("prunedStale", pruned),
	)
	return nil
}
