package rollup

import (
	"fmt"
	"testing"
	"time"
)

func groupAt(key string, at time.Time, count int) Group {
	return Group{TitleKey: key, Title: key, LastAt: at, Count: count}
}

func TestSelectHighlights_disjointViews(t *testing.T) {
	base := time.Now()
	var groups []Group
	for i := 0; i < 20; i++ {
		groups = append(groups, groupAt(fmt.Sprintf("item-%02d", i), base.Add(-time.Duration(i)*time.Hour), 1))
	}

	available, fresh := SelectHighlights(groups, 8)

	if len(available) != 8 || len(fresh) != 8 {
		t.Fatalf("expected 8+8 groups, got %d+%d", len(available), len(fresh))
	}

	seen := make(map[string]struct{})
	for _, g := range available {
		seen[g.TitleKey] = struct{}{}
	}
	for _, g := range fresh {
		if _, ok := seen[g.TitleKey]; ok {
			t.Errorf("key %q appears in both views", g.TitleKey)
		}
	}
}

func TestSelectHighlights_sortsByRecencyThenCount(t *testing.T) {
	base := time.Now()
	groups := []Group{
		groupAt("old", base.Add(-3*time.Hour), 5),
		groupAt("newest", base, 1),
		groupAt("tied-low", base.Add(-time.Hour), 1),
		groupAt("tied-high", base.Add(-time.Hour), 4),
	}

	available, _ := SelectHighlights(groups, 8)

	wantOrder := []string{"newest", "tied-high", "tied-low", "old"}
	for i, want := range wantOrder {
		if available[i].TitleKey != want {
			t.Errorf("position %d: expected %q, got %q", i, want, available[i].TitleKey)
		}
	}
}

func TestSelectHighlights_boundedPrefix(t *testing.T) {
	base := time.Now()
	var groups []Group
	for i := 0; i < 5; i++ {
		groups = append(groups, groupAt(fmt.Sprintf("g%d", i), base.Add(-time.Duration(i)*time.Minute), 1))
	}

	available, fresh := SelectHighlights(groups, 3)
	if len(available) != 3 {
		t.Errorf("expected 3 available-now groups, got %d", len(available))
	}
	if len(fresh) != 2 {
		t.Errorf("expected 2 remaining fresh groups, got %d", len(fresh))
	}
}

func TestSelectHighlights_emptyInput(t *testing.T) {
	available, fresh := SelectHighlights(nil, 8)
	if len(available) != 0 || len(fresh) != 0 {
		t.Fatalf("expected empty views, got %d+%d", len(available), len(fresh))
	}
}

func TestSelectHighlights_doesNotMutateInput(t *testing.T) {
	base := time.Now()
	groups := []Group{
		groupAt("b", base.Add(-time.Hour), 1),
		groupAt("a", base, 1),
	}
	SelectHighlights(groups, 8)
	if groups[0].TitleKey != "b" {
		t.Error("input slice order must be preserved")
	}
}

func TestIsFresh(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"just created", now, true},
		{"one hour old", now.Add(-time.Hour), true},
		{"at the window edge", now.Add(-DefaultFreshWindow), true},
		{"past the window", now.Add(-DefaultFreshWindow - time.Minute), false},
		{"in the future", now.Add(time.Minute), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFresh(tc.at, now, DefaultFreshWindow); got != tc.want {
				t.Errorf("IsFresh(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}
