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

// UpsertItemCommand creates or updates a menu item. The interface layer
// assigns the ID for new items; an existing ID updates in place and keeps
// the original creation time.
type UpsertItemCommand struct {
	TenantID    string   `json:"tenant_id" validate:"required"`
	ItemID      string   `json:"item_id" validate:"required"`
	IsNew       bool     `json:"is_new"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Category    string   `json:"category" validate:"max=100"`
	Subcategory string   `json:"subcategory" validate:"max=100"`
	Description string   `json:"description" validate:"max=5000"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url"`
	Steps       []string `json:"steps" validate:"max=100,dive,max=2000"`
}

// Validate validates the UpsertItemCommand
func (c UpsertItemCommand) Validate() error {
	if c.TenantID == "" {
		return pkgerrors.NewValidationError("tenant ID is required")
	}
	if c.ItemID == "" {
		return pkgerrors.NewValidationError("item ID is required")
	}
	if c.Title == "" {
		return pkgerrors.NewValidationError("title is required")
	}
	return nil
}

// UpsertItemHandler handles the UpsertItemCommand
type UpsertItemHandler struct {
	itemRepo     ports.ItemRepository
	orderingRepo ports.OrderingRepository
	transactions ports.MenuTransactions
	eventBus     ports.EventBus
	cache        ports.Cache
	logger       *zap.Logger
}

// NewUpsertItemHandler creates a new handler instance
func NewUpsertItemHandler(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	transactions ports.MenuTransactions,
	eventBus ports.EventBus,
	cache ports.Cache,
	logger *zap.Logger,
) *UpsertItemHandler {
	return &UpsertItemHandler{
		itemRepo:     itemRepo,
		orderingRepo: orderingRepo,
		transactions: transactions,
		eventBus:     eventBus,
		cache:        cache,
		logger:       logger,
	}
}

// Handle executes the upsert. The item and any ordering growth are
// persisted in one transaction so a new item can never exist without its
// ordering slot.
func (h *UpsertItemHandler) Handle(ctx context.Context, cmd UpsertItemCommand) error {
	now := time.Now().UTC()
	item := menu.Item{
		ID:          cmd.ItemID,
		TenantID:    cmd.TenantID,
		Title:       cmd.Title,
		Category:    cmd.Category,
		Subcategory: cmd.Subcategory,
		Description: cmd.Description,
		VideoURL:    cmd.VideoURL,
		Steps:       cmd.Steps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if !cmd.IsNew {
		existing, err := h.itemRepo.GetByID(ctx, cmd.TenantID, cmd.ItemID)
		if err != nil {
			return pkgerrors.Wrap(err, "upsert target lookup failed")
		}
		item.CreatedAt = existing.CreatedAt
	}

	if err := item.Validate(); err != nil {
		return err
	}

	ord, err := h.orderingRepo.Get(ctx, cmd.TenantID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load ordering")
	}

	// New items always land at the end of their bucket, and a relabeled
	// item surfaces its new bucket the same way.
	ord, grew := menu.EnsureItem(ord, item)
	if grew {
		if err := h.transactions.SaveItemAndOrdering(ctx, item, ord); err != nil {
			return pkgerrors.Wrap(err, "failed to save item with ordering")
		}
	} else {
		if err := h.itemRepo.Save(ctx, item); err != nil {
			return pkgerrors.Wrap(err, "failed to save item")
		}
	}

	h.invalidateMenu(ctx, cmd.TenantID)

	if err := h.eventBus.Publish(ctx, events.NewItemUpserted(cmd.TenantID, item.ID, item.Title, cmd.IsNew, now)); err != nil {
		h.logger.Warn("failed to publish item upserted event",
			zap.String("tenantID", cmd.TenantID),
			zap.String("itemID", item.ID),
			zap.Error(err),
		)
	}

	h.logger.Info("item upserted",
		zap.String("tenantID", cmd.TenantID),
		zap.String("itemID", item.ID),
		zap.Bool("created", cmd.IsNew),
		zap.Bool("orderingGrew", grew),
	)
	return nil
}

func (h *UpsertItemHandler) invalidateMenu(ctx context.Context, tenantID string) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, MenuCacheKey(tenantID))
	}
}

// MenuCacheKey is the cache key for a tenant's assembled menu view.
func MenuCacheKey(tenantID string) string {
	return "menu:" + tenantID
}
