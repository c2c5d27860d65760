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

// DeleteItemCommand removes an item. Deletion cascades to the ordering
// document and the training playlist.
type DeleteItemCommand struct {
	TenantID string `json:"tenant_id" validate:"required"`
	ItemID   string `json:"item_id" validate:"required"`
}

// Validate validates the DeleteItemCommand
func (c DeleteItemCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	if c.ItemID == "" {
		return pkgerrors.NewValidationError("item ID is required")
	}
	return nil
}

// DeleteItemHandler handles the DeleteItemCommand
type DeleteItemHandler struct {
	itemRepo     ports.ItemRepository
	orderingRepo ports.OrderingRepository
	playlistRepo ports.PlaylistRepository
	transactions ports.MenuTransactions
	eventBus     ports.EventBus
	cache        ports.Cache
	logger       *zap.Logger
}

// NewDeleteItemHandler creates a new handler instance
func NewDeleteItemHandler(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	playlistRepo ports.PlaylistRepository,
	transactions ports.MenuTransactions,
	eventBus ports.EventBus,
	cache ports.Cache,
	logger *zap.Logger,
) *DeleteItemHandler {
	return &DeleteItemHandler{
		itemRepo:     itemRepo,
		orderingRepo: orderingRepo,
		playlistRepo: playlistRepo,
		transactions: transactions,
		eventBus:     eventBus,
		cache:        cache,
		logger:       logger,
	}
}

// Handle removes the item and its ordering reference atomically, then
// prunes the playlist. A playlist prune failure is logged, not fatal:
// the next playlist read normalizes against the live item set anyway.
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	item, err := h.itemRepo.GetByID(ctx, cmd.TenantID, cmd.ItemID)
	if err != nil {
		return pkgerrors.Wrap(err, "delete target lookup failed")
	}

	ord, err := h.orderingRepo.Get(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load ordering")
	}
	ord, _ = menu.RemoveItem(ord, item)

	if err := h.transactions.DeleteItemAndOrdering(ctx, cmd.TenantID, cmd.ItemID, ord); err != nil {
		return pkgerrors.Wrap(err, "failed to delete item with ordering")
	}

	if playlist, err := h.playlistRepo.Get(ctx, cmd.TenantID); err == nil {
		if pruned, removed := playlist.Remove(cmd.ItemID); removed {
			pruned.UpdatedAt = time.Now().UTC()
			if err := h.playlistRepo.Put(ctx, pruned); err != nil {
				h.logger.Warn("failed to prune playlist after delete",
					zap.String("tenantID", cmd.TenantID),
					zap.String("itemID", cmd.ItemID),
					zap.Error(err),
				)
			}
		}
	} else {
		h.logger.Warn("failed to load playlist for delete cascade",
			zap.String("tenantID", cmd.TenantID),
			zap.Error(err),
		)
	}

	if h.cache != nil {
		_ = h.cache.Delete(ctx, MenuCacheKey(cmd.TenantID))
	}

	if err := h.eventBus.Publish(ctx, events.NewItemDeleted(cmd.TenantID, cmd.ItemID, time.Now().UTC())); err != nil {
		h.logger.Warn("failed to publish item deleted event",
			zap.String("tenantID", cmd.TenantID),
			zap.String("itemID", cmd.ItemID),
			zap.Error(err),
		)
	}

	h.logger.Info("item deleted",
		zap.String("tenantID", cmd.TenantID),
		zap.String("itemID", cmd.ItemID),
	)
	return nil
}
