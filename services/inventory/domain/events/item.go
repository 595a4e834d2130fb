package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context. The catalog worker
// subscribes to both to schedule a debounced re-aggregation for the circle.
const (
	TopicItemCreated = "item.created"
	TopicItemDeleted = "item.deleted"
)

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	CircleID   uuid.UUID `json:"circle_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	CircleID   uuid.UUID `json:"circle_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
