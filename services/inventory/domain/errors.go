package domain

import "errors"

// Sentinel errors for the inventory domain. Check with errors.Is().
var (
	// ErrItemNotFound indicates the requested item does not exist in the circle.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotItemOwner indicates the caller does not own the item it tried to modify.
	ErrNotItemOwner = errors.New("not the item owner")

	// ErrInvalidItemTitle indicates the item title violates domain constraints.
	ErrInvalidItemTitle = errors.New("invalid item title")
)
