// Package rollup turns the flat list of items visible in a circle into
// per-item-type groups: one entry per canonical title key, with the set of
// members who provide that item type and the most recent listing.
//
// Groups are recomputed from the full item list on every load; nothing here
// is persisted.
package rollup

import (
	"time"

	"github.com/google/uuid"
)

// CategoryOther is the fallback category for absent or unknown values.
const CategoryOther = "other"

// knownCategories is the fixed category enumeration for items.
var knownCategories = map[string]struct{}{
	"maison":    {},
	"bricolage": {},
	"jardin":    {},
	"sport":     {},
	"cuisine":   {},
	"vehicule":  {},
	CategoryOther: {},
}

// NormalizeCategory returns cat if it belongs to the known enumeration and
// CategoryOther otherwise. Boundary adapters use this to keep loose store
// rows out of the core.
func NormalizeCategory(cat string) string {
	if _, ok := knownCategories[cat]; ok {
		return cat
	}
	return CategoryOther
}

// ItemRecord is the strict input shape consumed by Aggregate. Callers adapt
// whatever rows their store produces into this form; Category must already be
// normalized via NormalizeCategory.
type ItemRecord struct {
	ID        uuid.UUID
	Title     string
	Category  string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	PhotoURL  string
}

// Owner is a distinct provider of an item type within a group.
type Owner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Group is the rollup of all items sharing a canonical title key.
type Group struct {
	// TitleKey is the canonical grouping key; stable across runs as long as
	// input titles normalize identically.
	TitleKey string `json:"title_key"`
	// Title is the human-friendly display title: a curated starter label when
	// one matches, otherwise the capitalized raw title of the latest item.
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Owners   []Owner `json:"owners"`
	// Count is the number of distinct owners, not raw item rows. One member
	// listing the same object type twice does not inflate the signal.
	Count int `json:"count"`
	// LastAt and LatestItemID track the most recent item in the group;
	// LatestItemID deep-links to a concrete detail view.
	LastAt       time.Time `json:"last_at"`
	LatestItemID uuid.UUID `json:"latest_item_id"`
	PhotoURL     string    `json:"photo_url,omitempty"`
}
