package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	inventorydomain "github.com/itsklemy/cercle-backend/services/inventory/domain"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/models"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/repositories"
	domainsvcs "github.com/itsklemy/cercle-backend/services/inventory/domain/services"
)

// ItemService orchestrates creation, listing, and removal of Items.
// Event publishing is handled by the repository layer (outbox pattern), so a
// saved item and its event are always committed together.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates and persists an Item owned by ownerID in circleID.
// The repository publishes ItemCreatedEvent in the same transaction.
func (s *ItemService) Create(ctx context.Context, circleID, ownerID uuid.UUID, title, category, photoURL string) (*models.Item, error) {
	itemTitle, err := models.NewItemTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidItemTitle, err)
	}

	item := models.NewItem(circleID, ownerID, itemTitle, models.ParseCategory(category), photoURL)

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidItemTitle, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item by ID scoped to the circle.
func (s *ItemService) GetByID(ctx context.Context, circleID, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, circleID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns a paginated slice of the circle's items plus total count.
func (s *ItemService) List(ctx context.Context, circleID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.ListByCircle(ctx, circleID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Delete removes an item after verifying the caller owns it.
// Returns ErrItemNotFound if the item does not exist in the circle and
// ErrNotItemOwner if it belongs to another member.
func (s *ItemService) Delete(ctx context.Context, circleID, memberID, id uuid.UUID) error {
	item, err := s.repo.GetByID(ctx, circleID, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if item.OwnerID != memberID {
		return inventorydomain.ErrNotItemOwner
	}
	if err := s.repo.Delete(ctx, circleID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
