package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itsklemy/cercle-backend/pkg/database"
	"github.com/itsklemy/cercle-backend/pkg/events"
	inventorydomain "github.com/itsklemy/cercle-backend/services/inventory/domain"
	domainevents "github.com/itsklemy/cercle-backend/services/inventory/domain/events"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/models"
	"github.com/itsklemy/cercle-backend/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus publishes item lifecycle events transactionally with
// the row changes (outbox pattern); pass nil to disable publishing.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO items (id, circle_id, owner_id, title, category, photo_url, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := tx.ExecContext(ctx, q,
			item.ID,
			item.CircleID,
			item.OwnerID,
			item.Title.String(),
			item.Category.String(),
			nullString(item.PhotoURL),
			item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("insert item: duplicate id %s", item.ID)
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID scoped to the given circle.
// Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, circleID, id uuid.UUID) (*models.Item, error) {
	const q = `
		SELECT id, circle_id, owner_id, title, category, photo_url, created_at
		FROM items
		WHERE circle_id = $1 AND id = $2`
	item, err := scanItem(r.db.DB().QueryRowContext(ctx, q, circleID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventorydomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// ListByCircle retrieves a paginated list of items, newest first, plus the
// total count for the circle ignoring pagination.
func (r *ItemRepository) ListByCircle(ctx context.Context, circleID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	const q = `
		SELECT id, circle_id, owner_id, title, category, photo_url, created_at
		FROM items
		WHERE circle_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.db.DB().QueryContext(ctx, q, circleID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	var total int
	const countQ = `SELECT COUNT(*) FROM items WHERE circle_id = $1`
	if err := r.db.DB().QueryRowContext(ctx, countQ, circleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	return items, total, nil
}

// Delete removes an item by ID scoped to the given circle and publishes an
// ItemDeletedEvent within the same transaction.
// Returns ErrItemNotFound if no row was deleted.
func (r *ItemRepository) Delete(ctx context.Context, circleID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const q = `DELETE FROM items WHERE circle_id = $1 AND id = $2`
		res, err := tx.ExecContext(ctx, q, circleID, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete item rows affected: %w", err)
		}
		if affected == 0 {
			return inventorydomain.ErrItemNotFound
		}

		if r.bus != nil {
			if err := r.publishDeleted(tx, circleID, id); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		CircleID:   item.CircleID,
		OwnerID:    item.OwnerID,
		Title:      item.Title.String(),
		Category:   item.Category.String(),
		OccurredAt: item.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishDeleted(tx *sql.Tx, circleID, itemID uuid.UUID) error {
	event := domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     itemID,
		CircleID:   circleID,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicItemDeleted, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item     models.Item
		title    string
		category string
		photoURL sql.NullString
	)
	if err := row.Scan(&item.ID, &item.CircleID, &item.OwnerID, &title, &category, &photoURL, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Title = models.ItemTitle(title)
	item.Category = models.ParseCategory(category)
	item.PhotoURL = photoURL.String
	return &item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
