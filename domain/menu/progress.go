package menu

import "time"

// Progress records how far one user of a tenant has worked through the
// training material: which items they completed and, for partially worked
// items, the index of the next step. Keyed by tenant plus user.
type Progress struct {
	TenantID     string         `json:"tenantId"`
	UserID       string         `json:"userId"`
	CompletedIDs []string       `json:"completedIds"`
	StepPosition map[string]int `json:"stepPosition,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt,omitempty"`
}

// MarkCompleted records an item as finished and clears any partial step
// position. Reports whether the record changed.
func (p Progress) MarkCompleted(itemID string) (Progress, bool) {
	if containsString(p.CompletedIDs, itemID) {
		return p, false
	}
	out := p.clone()
	out.CompletedIDs = append(out.CompletedIDs, itemID)
	delete(out.StepPosition, itemID)
	return out, true
}

// SetStep records the next step index for a partially worked item.
func (p Progress) SetStep(itemID string, step int) Progress {
	out := p.clone()
	if out.StepPosition == nil {
		out.StepPosition = map[string]int{}
	}
	out.StepPosition[itemID] = step
	return out
}

// Prune drops references to items that no longer exist. Reports whether
// anything was removed.
func (p Progress) Prune(items []Item) (Progress, bool) {
	live := make(map[string]bool, len(items))
	for _, it := range items {
		live[it.ID] = true
	}

	out := p.clone()
	changed := false

	kept := out.CompletedIDs[:0]
	for _, id := range out.CompletedIDs {
		if live[id] {
			kept = append(kept, id)
		} else {
			changed = true
		}
	}
	out.CompletedIDs = kept

	for id := range out.StepPosition {
		if !live[id] {
			delete(out.StepPosition, id)
			changed = true
		}
	}
	return out, changed
}

func (p Progress) clone() Progress {
	out := p
	out.CompletedIDs = append([]string(nil), p.CompletedIDs...)
	out.StepPosition = make(map[string]int, len(p.StepPosition))
	for k, v := range p.StepPosition {
		out.StepPosition[k] = v
	}
	return out
}
