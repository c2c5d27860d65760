package handlers

import (
	"context"
	"time"

	"mentra-backend/application/commands"
	"mentra-backend/application/ports"
	"mentra-backend/application/queries"
	"mentra-backend/domain/events"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"
	"mentra-backend/pkg/observability"

	"go.uber.org/zap"
)

// menuCacheTTLSeconds bounds how stale an assembled menu view may get
// between the write-path invalidations.
const menuCacheTTLSeconds = 30

// GetMenuHandler assembles the tenant menu view and is the single place
// reconciliation runs: drift between the stored ordering and the live
// item set is repaired here and written back before the view is returned,
// so every client sees an always-consistent document.
type GetMenuHandler struct {
	itemRepo     ports.ItemRepository
	orderingRepo ports.OrderingRepository
	eventBus     ports.EventBus
	cache        ports.Cache
	metrics      *observability.Metrics
	tracer       *observability.Tracer
	logger       *zap.Logger
}

// NewGetMenuHandler creates a new menu query handler
func NewGetMenuHandler(
	itemRepo ports.ItemRepository,
	orderingRepo ports.OrderingRepository,
	eventBus ports.EventBus,
	cache ports.Cache,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *GetMenuHandler {
	return &GetMenuHandler{
		itemRepo:     itemRepo,
		orderingRepo: orderingRepo,
		eventBus:     eventBus,
		cache:        cache,
		metrics:      metrics,
		tracer:       tracer,
		logger:       logger,
	}
}

// Handle executes the menu query with read repair.
func (h *GetMenuHandler) Handle(ctx context.Context, query queries.GetMenuQuery) (*queries.GetMenuResult, error) {
	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, commands.MenuCacheKey(query.TenantID)); ok {
			if result, ok := cached.(*queries.GetMenuResult); ok {
				return result, nil
			}
		}
	}

	if h.tracer != nil {
		h.tracer.AddAnnotation(ctx, "tenant_id", query.TenantID)
	}

	var items []menu.Item
	if err := h.trace(ctx, "dynamodb.list_items", func(ctx context.Context) error {
		var err error
		items, err = h.itemRepo.ListByTenant(ctx, query.TenantID)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list items")
	}

	var stored menu.Ordering
	if err := h.trace(ctx, "dynamodb.get_ordering", func(ctx context.Context) error {
		var err error
		stored, err = h.orderingRepo.Get(ctx, query.TenantID)
		return err
	}); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load ordering")
	}

	repaired, changed := menu.Repair(items, stored)
	if changed {
		// Read repair: stale references self-heal on the next read rather
		// than through a migration. A failed write-back is not fatal; the
		// repaired document is still returned and the next read retries.
		if err := h.trace(ctx, "menu.read_repair", func(ctx context.Context) error {
			return h.orderingRepo.Put(ctx, query.TenantID, repaired)
		}); err != nil {
			h.logger.Warn("failed to persist repaired ordering",
				zap.String("tenantID", query.TenantID),
				zap.Error(err),
			)
		} else {
			if h.metrics != nil {
				h.metrics.CountReadRepair(ctx, query.TenantID)
			}
			if err := h.eventBus.Publish(ctx, events.NewOrderingChanged(query.TenantID, events.OrderingReasonRepair, time.Now().UTC())); err != nil {
				h.logger.Warn("failed to publish ordering repaired event",
					zap.String("tenantID", query.TenantID),
					zap.Error(err),
				)
			}
		}
	}

	result := &queries.GetMenuResult{
		Items:      items,
		Ordering:   repaired,
		Categories: menu.BuildTree(items, repaired),
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, commands.MenuCacheKey(query.TenantID), result, menuCacheTTLSeconds)
	}
	return result, nil
}

// trace runs fn inside an X-Ray subsegment when tracing is wired.
func (h *GetMenuHandler) trace(ctx context.Context, name string, fn func(context.Context) error) error {
	if h.tracer == nil {
		return fn(ctx)
	}
	return h.tracer.Trace(ctx, name, fn)
}
