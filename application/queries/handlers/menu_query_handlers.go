package handlers

import (
	"context"

	"mentra-backend/application/ports"
	"mentra-backend/application/queries"
	"mentra-backend/domain/menu"
	pkgerrors "mentra-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetItemHandler returns a single item.
type GetItemHandler struct {
	itemRepo ports.ItemRepository
}

// NewGetItemHandler creates a new handler instance
func NewGetItemHandler(itemRepo ports.ItemRepository) *GetItemHandler {
	return &GetItemHandler{itemRepo: itemRepo}
}

// Handle executes the item query
func (h *GetItemHandler) Handle(ctx context.Context, query queries.GetItemQuery) (menu.Item, error) {
	return h.itemRepo.GetByID(ctx, query.TenantID, query.ItemID)
}

// ListItemsHandler returns a tenant's flat item list.
type ListItemsHandler struct {
	itemRepo ports.ItemRepository
}

// NewListItemsHandler creates a new handler instance
func NewListItemsHandler(itemRepo ports.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{itemRepo: itemRepo}
}

// Handle executes the list query
func (h *ListItemsHandler) Handle(ctx context.Context, query queries.ListItemsQuery) ([]menu.Item, error) {
	return h.itemRepo.ListByTenant(ctx, query.TenantID)
}

// GetPlaylistHandler returns the tenant playlist, normalized against the
// live item set so deleted items never show up.
type GetPlaylistHandler struct {
	itemRepo     ports.ItemRepository
	playlistRepo ports.PlaylistRepository
	logger       *zap.Logger
}

// NewGetPlaylistHandler creates a new handler instance
func NewGetPlaylistHandler(itemRepo ports.ItemRepository, playlistRepo ports.PlaylistRepository, logger *zap.Logger) *GetPlaylistHandler {
	return &GetPlaylistHandler{itemRepo: itemRepo, playlistRepo: playlistRepo, logger: logger}
}

// Handle executes the playlist query
func (h *GetPlaylistHandler) Handle(ctx context.Context, query queries.GetPlaylistQuery) (menu.Playlist, error) {
	playlist, err := h.playlistRepo.Get(ctx, query.TenantID)
	if err != nil {
		return menu.Playlist{}, pkgerrors.Wrap(err, "failed to load playlist")
	}

	items, err := h.itemRepo.ListByTenant(ctx, query.TenantID)
	if err != nil {
		return menu.Playlist{}, pkgerrors.Wrap(err, "failed to list items")
	}

	normalized, dropped := playlist.Normalize(items)
	if dropped {
		if err := h.playlistRepo.Put(ctx, normalized); err != nil {
			h.logger.Warn("failed to persist normalized playlist",
				zap.String("tenantID", query.TenantID),
				zap.Error(err),
			)
		}
	}
	return normalized, nil
}

// GetProgressHandler returns one user's progress record. A user with no
// record yet gets an empty one.
type GetProgressHandler struct {
	progressRepo ports.ProgressRepository
}

// NewGetProgressHandler creates a new handler instance
func NewGetProgressHandler(progressRepo ports.ProgressRepository) *GetProgressHandler {
	return &GetProgressHandler{progressRepo: progressRepo}
}

// Handle executes the progress query
func (h *GetProgressHandler) Handle(ctx context.Context, query queries.GetProgressQuery) (menu.Progress, error) {
	return h.progressRepo.Get(ctx, query.TenantID, query.UserID)
}
