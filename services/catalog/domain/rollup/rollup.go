package rollup

import (
	"strings"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/services/catalog/domain/keys"
)

// FallbackOwnerName is displayed when the owner lookup has no entry for an id.
const FallbackOwnerName = "Member"

// Aggregate folds items into one Group per canonical title key. Items whose
// title normalizes to an empty key are skipped. ownerNames resolves owner ids
// to display names and may be partial; missing entries fall back to
// FallbackOwnerName.
//
// The resulting slice is in first-seen key order; callers re-sort per view.
// Group contents are order-independent: the displayed title, category, and
// latest-item fields follow the item with the strictly greatest CreatedAt,
// whatever position it occupies in the input.
func Aggregate(items []ItemRecord, ownerNames map[uuid.UUID]string) []Group {
	index := make(map[string]int, len(items))
	groups := make([]Group, 0, len(items))

	for _, item := range items {
		key := keys.Normalize(item.Title)
		if key == "" {
			continue
		}

		idx, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, Group{
				TitleKey:     key,
				Title:        displayTitle(key, item.Title),
				Category:     NormalizeCategory(item.Category),
				Owners:       []Owner{ownerOf(item, ownerNames)},
				Count:        1,
				LastAt:       item.CreatedAt,
				LatestItemID: item.ID,
				PhotoURL:     item.PhotoURL,
			})
			continue
		}

		g := &groups[idx]
		if !hasOwner(g.Owners, item.OwnerID) {
			g.Owners = append(g.Owners, ownerOf(item, ownerNames))
			g.Count = len(g.Owners)
		}
		if g.LastAt.IsZero() || item.CreatedAt.After(g.LastAt) {
			g.LastAt = item.CreatedAt
			g.LatestItemID = item.ID
			g.Category = NormalizeCategory(item.Category)
			g.Title = displayTitle(key, item.Title)
			if item.PhotoURL != "" {
				g.PhotoURL = item.PhotoURL
			}
		}
	}

	return groups
}

// displayTitle prefers the curated starter label for key; when none matches it
// capitalizes the contributing item's raw title instead of the flattened key,
// preserving the accents the member typed.
func displayTitle(key, rawTitle string) string {
	if label, ok := keys.CuratedLabel(key); ok {
		return label
	}
	if trimmed := strings.TrimSpace(rawTitle); trimmed != "" {
		return capitalizeKey(trimmed)
	}
	return capitalizeKey(key)
}

func capitalizeKey(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func ownerOf(item ItemRecord, ownerNames map[uuid.UUID]string) Owner {
	name, ok := ownerNames[item.OwnerID]
	if !ok || name == "" {
		name = FallbackOwnerName
	}
	return Owner{ID: item.OwnerID, Name: name}
}

func hasOwner(owners []Owner, id uuid.UUID) bool {
	for _, o := range owners {
		if o.ID == id {
			return true
		}
	}
	return false
}
