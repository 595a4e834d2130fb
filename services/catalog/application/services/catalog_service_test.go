package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/config"
	"github.com/itsklemy/cercle-backend/pkg/logger"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/ideas"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// fakeReader is an in-memory CatalogReader for unit tests.
type fakeReader struct {
	items     map[uuid.UUID][]rollup.ItemRecord
	names     map[uuid.UUID]map[uuid.UUID]string
	listCalls int
	listErr   error
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		items: make(map[uuid.UUID][]rollup.ItemRecord),
		names: make(map[uuid.UUID]map[uuid.UUID]string),
	}
}

func (f *fakeReader) ListItems(_ context.Context, circleID uuid.UUID) ([]rollup.ItemRecord, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items[circleID], nil
}

func (f *fakeReader) MemberNames(_ context.Context, circleID uuid.UUID) (map[uuid.UUID]string, error) {
	return f.names[circleID], nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestService(reader *fakeReader) *CatalogService {
	return NewCatalogService(reader, nil, testLogger(), rollup.DefaultFreshWindow, rollup.DefaultHighlightLimit)
}

func TestCatalogService_Catalog(t *testing.T) {
	circleID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	reader := newFakeReader()
	reader.items[circleID] = []rollup.ItemRecord{
		{ID: uuid.New(), Title: "Perceuse", Category: "bricolage", OwnerID: alice, CreatedAt: base},
		{ID: uuid.New(), Title: "perceuses", Category: "bricolage", OwnerID: bob, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Title: "Tente", Category: "sport", OwnerID: alice, CreatedAt: base.Add(2 * time.Hour)},
	}
	reader.names[circleID] = map[uuid.UUID]string{alice: "Alice", bob: "Bob"}

	svc := newTestService(reader)
	groups, err := svc.Catalog(context.Background(), circleID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Sorted by recency: tente last touched after perceuse.
	if groups[0].TitleKey != "tente" {
		t.Errorf("expected tente first, got %s", groups[0].TitleKey)
	}
	if groups[1].TitleKey != "perceuse" {
		t.Errorf("expected perceuse second, got %s", groups[1].TitleKey)
	}
	if groups[1].Count != 2 {
		t.Errorf("expected perceuse count 2, got %d", groups[1].Count)
	}
}

func TestCatalogService_Catalog_ReaderError(t *testing.T) {
	reader := newFakeReader()
	reader.listErr = errors.New("db down")

	svc := newTestService(reader)
	if _, err := svc.Catalog(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error from reader")
	}
}

func TestCatalogService_Highlights(t *testing.T) {
	circleID := uuid.New()
	owner := uuid.New()
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)

	reader := newFakeReader()
	reader.items[circleID] = []rollup.ItemRecord{
		{ID: uuid.New(), Title: "Perceuse", Category: "bricolage", OwnerID: owner, CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), Title: "Tente", Category: "sport", OwnerID: owner, CreatedAt: now.Add(-72 * time.Hour)},
	}

	svc := newTestService(reader)
	availableNow, fresh, err := svc.Highlights(context.Background(), circleID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(availableNow)+len(fresh) != 2 {
		t.Fatalf("expected 2 highlights total, got %d + %d", len(availableNow), len(fresh))
	}

	// The two strips never share a group.
	seen := make(map[string]bool)
	for _, h := range availableNow {
		seen[h.TitleKey] = true
	}
	for _, h := range fresh {
		if seen[h.TitleKey] {
			t.Errorf("group %s appears in both strips", h.TitleKey)
		}
	}

	// Freshness flags follow the 48h window.
	for _, h := range append(availableNow, fresh...) {
		wantFresh := h.TitleKey == "perceuse"
		if h.Fresh != wantFresh {
			t.Errorf("group %s: expected fresh=%v, got %v", h.TitleKey, wantFresh, h.Fresh)
		}
	}
}

func TestCatalogService_Ideas(t *testing.T) {
	svc := newTestService(newFakeReader())
	presets := svc.Ideas()
	if len(presets) == 0 {
		t.Fatal("expected curated presets")
	}
}

func TestCatalogService_IdeaCatalog(t *testing.T) {
	circleID := uuid.New()
	owner := uuid.New()
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)

	reader := newFakeReader()
	reader.items[circleID] = []rollup.ItemRecord{
		{ID: uuid.New(), Title: "Raquette de tennis", Category: "sport", OwnerID: owner, CreatedAt: now},
		{ID: uuid.New(), Title: "Perceuse", Category: "bricolage", OwnerID: owner, CreatedAt: now},
	}

	svc := newTestService(reader)

	t.Run("category preset filters", func(t *testing.T) {
		groups, err := svc.IdeaCatalog(context.Background(), circleID, "sport-ce-soir")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 1 || groups[0].Category != "sport" {
			t.Errorf("expected only the sport group, got %+v", groups)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := svc.IdeaCatalog(context.Background(), circleID, "nope")
		if !errors.Is(err, ideas.ErrUnknownPreset) {
			t.Fatalf("expected ErrUnknownPreset, got %v", err)
		}
	})
}

func TestCatalogService_Refresh_NoCacheIsNoop(t *testing.T) {
	circleID := uuid.New()
	reader := newFakeReader()
	svc := newTestService(reader)

	if err := svc.Refresh(context.Background(), circleID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.listCalls != 1 {
		t.Errorf("expected 1 recompute, got %d", reader.listCalls)
	}
}
