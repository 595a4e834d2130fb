package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save persists a new item and publishes ItemCreatedEvent in the same
	// transaction.
	Save(ctx context.Context, item *models.Item) error

	GetByID(ctx context.Context, circleID, id uuid.UUID) (*models.Item, error)

	// ListByCircle retrieves a paginated list of items for the circle,
	// newest first, plus the total count ignoring pagination.
	ListByCircle(ctx context.Context, circleID uuid.UUID, opts QueryOpts) ([]*models.Item, int, error)

	// Delete removes an item and publishes ItemDeletedEvent in the same
	// transaction.
	Delete(ctx context.Context, circleID, id uuid.UUID) error
}
