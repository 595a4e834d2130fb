package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/database"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// CatalogRepository implements repositories.CatalogReader against PostgreSQL.
// It reads the same items table the inventory context writes; the catalog
// context never mutates it.
type CatalogRepository struct {
	db *database.Database
}

// NewCatalogRepository returns a CatalogRepository backed by the given connection pool.
func NewCatalogRepository(database *database.Database) *CatalogRepository {
	return &CatalogRepository{db: database}
}

// ListItems returns every item in the circle as a strict ItemRecord.
// NULL category folds to "other" and NULL photo_url to empty at this boundary.
func (r *CatalogRepository) ListItems(ctx context.Context, circleID uuid.UUID) ([]rollup.ItemRecord, error) {
	const q = `
		SELECT id, title, category, owner_id, created_at, photo_url
		FROM items
		WHERE circle_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.DB().QueryContext(ctx, q, circleID)
	if err != nil {
		return nil, fmt.Errorf("query catalog items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var records []rollup.ItemRecord
	for rows.Next() {
		var (
			rec      rollup.ItemRecord
			category sql.NullString
			photoURL sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &category, &rec.OwnerID, &rec.CreatedAt, &photoURL); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		rec.Category = rollup.NormalizeCategory(category.String)
		rec.PhotoURL = photoURL.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog items: %w", err)
	}
	return records, nil
}

// MemberNames returns the display name of every member in the circle.
func (r *CatalogRepository) MemberNames(ctx context.Context, circleID uuid.UUID) (map[uuid.UUID]string, error) {
	const q = `
		SELECT member_id, display_name
		FROM circle_members
		WHERE circle_id = $1`
	rows, err := r.db.DB().QueryContext(ctx, q, circleID)
	if err != nil {
		return nil, fmt.Errorf("query member names: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	names := make(map[uuid.UUID]string)
	for rows.Next() {
		var (
			memberID uuid.UUID
			name     sql.NullString
		)
		if err := rows.Scan(&memberID, &name); err != nil {
			return nil, fmt.Errorf("scan member name: %w", err)
		}
		if name.Valid && name.String != "" {
			names[memberID] = name.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member names: %w", err)
	}
	return names, nil
}
