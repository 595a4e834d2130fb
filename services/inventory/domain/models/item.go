package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single listing contributed by one member of a circle.
// It always belongs to exactly one circle and one owner; several items from
// different owners (or the same owner) may share the same title.
type Item struct {
	ID        uuid.UUID
	CircleID  uuid.UUID // sharing scope — always filter by this in queries
	OwnerID   uuid.UUID
	Title     ItemTitle
	Category  Category
	PhotoURL  string // optional
	CreatedAt time.Time
}

// NewItem constructs a valid Item with a generated ID and current timestamp.
func NewItem(circleID, ownerID uuid.UUID, title ItemTitle, category Category, photoURL string) *Item {
	return &Item{
		ID:        uuid.New(),
		CircleID:  circleID,
		OwnerID:   ownerID,
		Title:     title,
		Category:  category,
		PhotoURL:  photoURL,
		CreatedAt: time.Now().UTC(),
	}
}
