package menu

import "time"

// Playlist is the per-tenant training playlist: an ordered list of item
// ids staff work through in sequence. Deleting an item cascades to its
// removal here.
type Playlist struct {
	TenantID  string    `json:"tenantId"`
	ItemIDs   []string  `json:"itemIds"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Normalize deduplicates the playlist by first occurrence and drops ids
// that have no live item, preserving the surviving order. Reports whether
// anything was removed.
func (p Playlist) Normalize(items []Item) (Playlist, bool) {
	live := make(map[string]bool, len(items))
	for _, it := range items {
		live[it.ID] = true
	}

	out := Playlist{TenantID: p.TenantID, UpdatedAt: p.UpdatedAt, ItemIDs: make([]string, 0, len(p.ItemIDs))}
	taken := make(map[string]bool, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if live[id] && !taken[id] {
			out.ItemIDs = append(out.ItemIDs, id)
			taken[id] = true
		}
	}
	return out, len(out.ItemIDs) != len(p.ItemIDs)
}

// Remove drops an item id from the playlist. Reports whether it was present.
func (p Playlist) Remove(itemID string) (Playlist, bool) {
	if !containsString(p.ItemIDs, itemID) {
		return p, false
	}
	out := Playlist{TenantID: p.TenantID, UpdatedAt: p.UpdatedAt}
	out.ItemIDs = removeString(append([]string(nil), p.ItemIDs...), itemID)
	return out, true
}
