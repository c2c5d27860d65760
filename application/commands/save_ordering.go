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

// SaveOrderingCommand replaces a tenant's ordering document wholesale.
// The document is repaired against the live item set before it is stored,
// so clients can never persist references to items that do not exist.
type SaveOrderingCommand struct {
	TenantID string        `json:"tenant_id" validate:"required"`
	Ordering menu.Ordering `json:"ordering"`
}

// Validate validates the SaveOrderingCommand
func (c SaveOrderingCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return nil
}

// SaveOrderingHandler handles the SaveOrderingCommand
type SaveOrderingHandler struct {
	itemRepo     ports.ItemRepository
	orderingRepo ports.OrderingRepository
	eventBus     ports.EventBus
	cache        ports.Cache
	logger       *zap.Logger
}

// NewSaveOrderingHandler creates a new handler instance
func NewSaveOrderingHandler(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	eventBus ports.EventBus,
	cache ports.Cache,
	logger *zap.Logger,
) *SaveOrderingHandler {
	return &SaveOrderingHandler{
		itemRepo:     itemRepo,
		orderingRepo: orderingRepo,
		eventBus:     eventBus,
		cache:        cache,
		logger:       logger,
	}
}

// Handle repairs the submitted document against the live items and stores
// the result. Last write wins; there is no version token.
func (h *SaveOrderingHandler) Handle(ctx context.Context, cmd SaveOrderingCommand) error {
	items, err := h.itemRepo.ListByTenant(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to list items")
	}

	repaired, changed := menu.Repair(items, cmd.Ordering)
	if err := h.orderingRepo.Put(ctx, cmd.TenantID, repaired); err != nil {
		return pkgerrors.Wrap(err, "failed to persist ordering")
	}

	if h.cache != nil {
		_ = h.cache.Delete(ctx, MenuCacheKey(cmd.TenantID))
	}

	if err := h.eventBus.Publish(ctx, events.NewOrderingChanged(cmd.TenantID, events.OrderingReasonReplace, time.Now().UTC())); err != nil {
		h.logger.Warn("failed to publish ordering changed event",
			zap.String("tenantID", cmd.TenantID),
			zap.Error(err),
		)
	}

	h.logger.Info("ordering replaced",
		zap.String("tenantID", cmd.TenantID),
		zap.Bool("repairAdjusted", changed),
	)
	return nil
}
