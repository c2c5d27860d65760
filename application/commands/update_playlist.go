package commands

import (
	"context"
	"time"

	"mentra-backend/application/ports"
	"mentra-backend/domain/events"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"go.uber.org/zap"
)

// UpdatePlaylistCommand replaces the tenant's training playlist. Unknown
// and duplicate item ids are dropped before the list is stored.
type UpdatePlaylistCommand struct {
	TenantID string   `json:"tenant_id" validate:"required"`
	ItemIDs  []string `json:"item_ids" validate:"max=500"`
}

// Validate validates the UpdatePlaylistCommand
func (c UpdatePlaylistCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return nil
}

// UpdatePlaylistHandler handles the UpdatePlaylistCommand
type UpdatePlaylistHandler struct {
	itemRepo     ports.ItemRepository
	playlistRepo ports.PlaylistRepository
	eventBus     ports.EventBus
	logger       *zap.Logger
}

// NewUpdatePlaylistHandler creates a new handler instance
func NewUpdatePlaylistHandler(
	itemRepo ports.ItemRepository,
	playlistRepo ports.PlaylistRepository,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *UpdatePlaylistHandler {
	return &UpdatePlaylistHandler{
		itemRepo:     itemRepo,
		playlistRepo: playlistRepo,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// Handle normalizes and stores the playlist.
func (h *UpdatePlaylistHandler) Handle(ctx context.Context, cmd UpdatePlaylistCommand) error {
	items, err := h.itemRepo.ListByTenant(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to list items")
	}

	now := time.Now().UTC()
	playlist := menu.Playlist{TenantID: cmd.TenantID, ItemIDs: cmd.ItemIDs, UpdatedAt: now}
	playlist, dropped := playlist.Normalize(items)

	if err := h.playlistRepo.Put(ctx, playlist); err != nil {
		return pkgerrors.Wrap(err, "failed to persist playlist")
	}

	if err := h.eventBus.Publish(ctx, events.NewPlaylistUpdated(cmd.TenantID, len(playlist.ItemIDs), now)); err != nil {
		h.logger.Warn("failed to publish playlist updated event",
			zap.String("tenantID", cmd.TenantID),
			zap.Error(err),
		)
	}

	h.logger.Info("playlist updated",
		zap.String("tenantID", cmd.TenantID),
		zap.Int("items", len(playlist.ItemIDs)),
		zap.Bool("droppedStale", dropped),
	)
	return nil
}
