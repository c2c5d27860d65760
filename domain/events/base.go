package events

import "time"

// DomainEvent is the base interface for all domain events. Events
// describe something that already happened to a tenant's menu.
type DomainEvent interface {
	GetAggregateID() string
	GetTenantID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	TenantID    string    `json:"tenant_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetTenantID() string     { return e.TenantID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// ItemUpserted is raised when a menu item is created or updated.
type ItemUpserted struct {
	BaseEvent
	ItemID  string `json:"item_id"`
	Title   string `json:"title"`
	Created bool   `json:"created"`
}

// NewItemUpserted creates an ItemUpserted event
func NewItemUpserted(tenantID, itemID, title string, created bool, timestamp time.Time) ItemUpserted {
	return ItemUpserted{
		BaseEvent: BaseEvent{
			AggregateID: itemID,
			TenantID:    tenantID,
			EventType:   "menu.item_upserted",
			Timestamp:   timestamp,
		},
		ItemID:  itemID,
		Title:   title,
		Created: created,
	}
}

// ItemDeleted is raised when a menu item is removed.
type ItemDeleted struct {
	BaseEvent
	ItemID string `json:"item_id"`
}

// NewItemDeleted creates an ItemDeleted event
func NewItemDeleted(tenantID, itemID string, timestamp time.Time) ItemDeleted {
	return ItemDeleted{
		BaseEvent: BaseEvent{
			AggregateID: itemID,
			TenantID:    tenantID,
			EventType:   "menu.item_deleted",
			Timestamp:   timestamp,
		},
		ItemID: itemID,
	}
}

// OrderingChanged is raised whenever the persisted ordering document is
// rewritten, whether by an explicit reorder or a read repair.
type OrderingChanged struct {
	BaseEvent
	Reason string `json:"reason"`
}

// Ordering change reasons.
const (
	OrderingReasonMove    = "move"
	OrderingReasonReplace = "replace"
	OrderingReasonRepair  = "repair"
	OrderingReasonUpsert  = "upsert"
	OrderingReasonCascade = "delete_cascade"
)

// NewOrderingChanged creates an OrderingChanged event
func NewOrderingChanged(tenantID, reason string, timestamp time.Time) OrderingChanged {
	return OrderingChanged{
		BaseEvent: BaseEvent{
			AggregateID: tenantID,
			TenantID:    tenantID,
			EventType:   "menu.ordering_changed",
			Timestamp:   timestamp,
		},
		Reason: reason,
	}
}

// PlaylistUpdated is raised when the tenant training playlist changes.
type PlaylistUpdated struct {
	BaseEvent
	ItemCount int `json:"item_count"`
}

// NewPlaylistUpdated creates a PlaylistUpdated event
func NewPlaylistUpdated(tenantID string, itemCount int, timestamp time.Time) PlaylistUpdated {
	return PlaylistUpdated{
		BaseEvent: BaseEvent{
			AggregateID: tenantID,
			TenantID:    tenantID,
			EventType:   "menu.playlist_updated",
			Timestamp:   timestamp,
		},
		ItemCount: itemCount,
	}
}
