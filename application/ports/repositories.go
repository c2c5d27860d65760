package ports

import (
	"context"

	"mentra-backend/domain/events"
	"mentra-backend/domain/menu"
)

// ItemRepository defines the interface for menu item persistence.
// This is a port in hexagonal architecture - the domain doesn't know
// about the implementation.
type ItemRepository interface {
	// Save persists an item (create or update)
	Save(ctx context.Context, item menu.Item) error

	// GetByID retrieves one item within a tenant
	GetByID(ctx context.Context, tenantID, itemID string) (menu.Item, error)

	// ListByTenant retrieves every item of a tenant
	ListByTenant(ctx context.Context, tenantID string) ([]menu.Item, error)

	// Delete removes an item
	Delete(ctx context.Context, tenantID, itemID string) error
}

// OrderingRepository defines the interface for the persisted ordering
// document. The document is replaced wholesale, never patched.
type OrderingRepository interface {
	// Get retrieves the tenant's ordering document; a tenant without one
	// yet gets an empty document, not an error.
	Get(ctx context.Context, tenantID string) (menu.Ordering, error)

	// Put replaces the tenant's ordering document.
	Put(ctx context.Context, tenantID string, ord menu.Ordering) error
}

// PlaylistRepository defines the interface for the training playlist.
type PlaylistRepository interface {
	Get(ctx context.Context, tenantID string) (menu.Playlist, error)
	Put(ctx context.Context, playlist menu.Playlist) error
}

// ProgressRepository defines the per-tenant, per-user progress store.
type ProgressRepository interface {
	Get(ctx context.Context, tenantID, userID string) (menu.Progress, error)
	Put(ctx context.Context, progress menu.Progress) error
}

// MenuTransactions groups the writes that must land atomically. A
// cross-bucket item move rewrites the item's own category fields and the
// ordering document together; performing them as two independent calls
// would leave a window where a repair pass undoes the move.
type MenuTransactions interface {
	// SaveItemAndOrdering persists both in one transaction.
	SaveItemAndOrdering(ctx context.Context, item menu.Item, ord menu.Ordering) error

	// DeleteItemAndOrdering removes the item and replaces the ordering in
	// one transaction.
	DeleteItemAndOrdering(ctx context.Context, tenantID, itemID string, ord menu.Ordering) error
}

// EventBus publishes domain events to interested consumers.
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// Cache is a small read-through cache for expensive query results.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
