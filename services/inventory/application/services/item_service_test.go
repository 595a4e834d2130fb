package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	inventorydomain "github.com/itsklemy/cercle-backend/services/inventory/domain"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/models"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/repositories"
)

// fakeItemRepo is an in-memory ItemRepository for unit tests.
type fakeItemRepo struct {
	items   map[uuid.UUID]*models.Item
	saveErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*models.Item)}
}

func (f *fakeItemRepo) Save(_ context.Context, item *models.Item) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, circleID, id uuid.UUID) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok || item.CircleID != circleID {
		return nil, inventorydomain.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemRepo) ListByCircle(_ context.Context, circleID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	var out []*models.Item
	for _, item := range f.items {
		if item.CircleID == circleID {
			out = append(out, item)
		}
	}
	return out, len(out), nil
}

func (f *fakeItemRepo) Delete(_ context.Context, circleID, id uuid.UUID) error {
	item, ok := f.items[id]
	if !ok || item.CircleID != circleID {
		return inventorydomain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func TestItemService_Create(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo)
	circleID := uuid.New()
	ownerID := uuid.New()

	t.Run("valid item persisted", func(t *testing.T) {
		item, err := svc.Create(context.Background(), circleID, ownerID, "Perceuse", "bricolage", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Category != models.CategoryBricolage {
			t.Errorf("expected bricolage, got %s", item.Category)
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Error("item not saved to repository")
		}
	})

	t.Run("unknown category folds to other", func(t *testing.T) {
		item, err := svc.Create(context.Background(), circleID, ownerID, "Truc", "electromenager", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Category != models.CategoryOther {
			t.Errorf("expected other, got %s", item.Category)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), circleID, ownerID, "", "sport", "")
		if !errors.Is(err, inventorydomain.ErrInvalidItemTitle) {
			t.Fatalf("expected ErrInvalidItemTitle, got %v", err)
		}
	})

	t.Run("whitespace title rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), circleID, ownerID, "   ", "sport", "")
		if !errors.Is(err, inventorydomain.ErrInvalidItemTitle) {
			t.Fatalf("expected ErrInvalidItemTitle, got %v", err)
		}
	})

	t.Run("save error propagated", func(t *testing.T) {
		broken := newFakeItemRepo()
		broken.saveErr = errors.New("db down")
		_, err := NewItemService(broken).Create(context.Background(), circleID, ownerID, "Tente", "sport", "")
		if err == nil {
			t.Fatal("expected error from repository")
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	circleID := uuid.New()
	ownerID := uuid.New()

	setup := func(t *testing.T) (*ItemService, *models.Item) {
		t.Helper()
		repo := newFakeItemRepo()
		svc := NewItemService(repo)
		item, err := svc.Create(context.Background(), circleID, ownerID, "Échelle", "bricolage", "")
		if err != nil {
			t.Fatalf("setup create: %v", err)
		}
		return svc, item
	}

	t.Run("owner can delete", func(t *testing.T) {
		svc, item := setup(t)
		if err := svc.Delete(context.Background(), circleID, ownerID, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc, item := setup(t)
		err := svc.Delete(context.Background(), circleID, uuid.New(), item.ID)
		if !errors.Is(err, inventorydomain.ErrNotItemOwner) {
			t.Fatalf("expected ErrNotItemOwner, got %v", err)
		}
	})

	t.Run("missing item reports not found", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.Delete(context.Background(), circleID, ownerID, uuid.New())
		if !errors.Is(err, inventorydomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("wrong circle reports not found", func(t *testing.T) {
		svc, item := setup(t)
		err := svc.Delete(context.Background(), uuid.New(), ownerID, item.ID)
		if !errors.Is(err, inventorydomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
