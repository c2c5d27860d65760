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

// MoveEntryCommand applies one drag-and-drop gesture to the menu: a
// category, subcategory or item moved to a new position, possibly into a
// different bucket. Destination labels travel with the command because
// slugs are not reversible to display text.
type MoveEntryCommand struct {
	TenantID string         `json:"tenant_id" validate:"required"`
	Level    menu.MoveLevel `json:"level" validate:"required,oneof=category subcategory item"`

	// ID is the category slug, subcategory slug, or item id being moved.
	ID string `json:"id" validate:"required"`

	// Source bucket, as slugs.
	CategorySlug    string `json:"category_slug"`
	SubcategorySlug string `json:"subcategory_slug"`

	// Destination labels for cross-bucket item moves; the moved item's own
	// category/subcategory fields are rewritten to these.
	ToCategory    string `json:"to_category" validate:"max=100"`
	ToSubcategory string `json:"to_subcategory" validate:"max=100"`

	// Index is the target position in the destination list.
	Index int `json:"index" validate:"gte=0"`
}

// Validate validates the MoveEntryCommand
func (c MoveEntryCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	return c.toMove().Validate()
}

func (c MoveEntryCommand) toMove() menu.Move {
	return menu.Move{
		Level:             c.Level,
		ID:                c.ID,
		CategorySlug:      c.CategorySlug,
		SubcategorySlug:   c.SubcategorySlug,
		ToCategorySlug:    menu.Slugify(c.ToCategory),
		ToSubcategorySlug: menu.Slugify(c.ToSubcategory),
		Index:             c.Index,
	}
}

// MoveEntryHandler handles the MoveEntryCommand
type MoveEntryHandler struct {
	itemRepo     ports.ItemRepository
	orderingRepo ports.OrderingRepository
	transactions ports.MenuTransactions
	eventBus     ports.EventBus
	cache        ports.Cache
	logger       *zap.Logger
}

// NewMoveEntryHandler creates a new handler instance
func NewMoveEntryHandler(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	transactions ports.MenuTransactions,
	eventBus ports.EventBus,
	cache ports.Cache,
	logger *zap.Logger,
) *MoveEntryHandler {
	return &MoveEntryHandler{
		itemRepo:     itemRepo,
		orderingRepo: orderingRepo,
		transactions: transactions,
		eventBus:     eventBus,
		cache:        cache,
		logger:       logger,
	}
}

// Handle rewrites the ordering document for the gesture. A cross-bucket
// item move also rewrites the item's stored category/subcategory fields,
// and both writes land in one transaction so a repair pass can never
// observe the move half-applied.
func (h *MoveEntryHandler) Handle(ctx context.Context, cmd MoveEntryCommand) error {
	ord, err := h.orderingRepo.Get(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load ordering")
	}

	mv := cmd.toMove()
	moved, err := menu.ApplyMove(ord, mv)
	if err != nil {
		return err
	}

	if mv.CrossesBuckets() {
		item, err := h.itemRepo.GetByID(ctx, cmd.TenantID, cmd.ID)
		if err != nil {
			return pkgerrors.Wrap(err, "moved item lookup failed")
		}
		// Blank destination labels mean "unchanged", mirroring the slug
		// fallback in the move itself.
		if cmd.ToCategory != "" {
			item.Category = cmd.ToCategory
		}
		if cmd.ToSubcategory != "" {
			item.Subcategory = cmd.ToSubcategory
		}
		item.UpdatedAt = time.Now().UTC()

		if err := h.transactions.SaveItemAndOrdering(ctx, item, moved); err != nil {
			return pkgerrors.Wrap(err, "failed to persist cross-bucket move")
		}
	} else {
		if err := h.orderingRepo.Put(ctx, cmd.TenantID, moved); err != nil {
			return pkgerrors.Wrap(err, "failed to persist ordering")
		}
	}

	if h.cache != nil {
		_ = h.cache.Delete(ctx, MenuCacheKey(cmd.TenantID))
	}

	if err := h.eventBus.Publish(ctx, events.NewOrderingChanged(cmd.TenantID, events.OrderingReasonMove, time.Now().UTC())); err != nil {
		h.logger.Warn("failed to publish ordering changed event",
			zap.String("tenantID", cmd.TenantID),
			zap.Error(err),
		)
	}

	h.logger.Info("menu entry moved",
		zap.String("tenantID", cmd.TenantID),
		zap.String("level", string(cmd.Level)),
		zap.String("id", cmd.ID),
		zap.Int("index", cmd.Index),
		zap.Bool("crossBucket", mv.CrossesBuckets()),
	)
	return nil
}
