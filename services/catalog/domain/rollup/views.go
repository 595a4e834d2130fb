package rollup

import (
	"sort"
	"time"
)

const (
	// DefaultHighlightLimit bounds each of the two highlight views.
	DefaultHighlightLimit = 8
	// DefaultFreshWindow is how long after its latest item a group still
	// counts as new.
	DefaultFreshWindow = 48 * time.Hour
)

// SelectHighlights splits groups into the two home-screen views:
// "available now" takes the top limit groups sorted by recency, and "fresh"
// takes the next limit groups under the same sort. The two views are disjoint
// by title key; a group never appears in both.
func SelectHighlights(groups []Group, limit int) (availableNow, fresh []Group) {
	if limit <= 0 {
		limit = DefaultHighlightLimit
	}

	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	SortByRecency(sorted)

	used := make(map[string]struct{}, limit)
	availableNow = take(sorted, limit, used)
	fresh = take(sorted, limit, used)
	return availableNow, fresh
}

// SortByRecency orders groups by LastAt descending, ties broken by Count
// descending, then by TitleKey for a stable output.
func SortByRecency(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].LastAt.Equal(groups[j].LastAt) {
			return groups[i].LastAt.After(groups[j].LastAt)
		}
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].TitleKey < groups[j].TitleKey
	})
}

// take appends up to limit groups not yet present in used, marking each key
// as consumed so a later selection skips it.
func take(sorted []Group, limit int, used map[string]struct{}) []Group {
	out := make([]Group, 0, limit)
	for _, g := range sorted {
		if len(out) == limit {
			break
		}
		if _, ok := used[g.TitleKey]; ok {
			continue
		}
		used[g.TitleKey] = struct{}{}
		out = append(out, g)
	}
	return out
}

// IsFresh reports whether t falls within window of now. Informational only;
// it does not affect sort order.
func IsFresh(t, now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DefaultFreshWindow
	}
	age := now.Sub(t)
	return age >= 0 && age <= window
}
