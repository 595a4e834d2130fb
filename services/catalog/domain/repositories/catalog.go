package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// CatalogReader is the read-side persistence interface for catalog aggregation.
// The domain layer owns this interface; infrastructure implements it.
type CatalogReader interface {
	// ListItems returns every item in the circle as a strict ItemRecord.
	// Missing optional columns are folded into defaults at this boundary so
	// the aggregation core never sees NULLs.
	ListItems(ctx context.Context, circleID uuid.UUID) ([]rollup.ItemRecord, error)

	// MemberNames returns the display name of every member in the circle.
	// Members absent from the map get a generic fallback name downstream.
	MemberNames(ctx context.Context, circleID uuid.UUID) (map[uuid.UUID]string, error)
}
