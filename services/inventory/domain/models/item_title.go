package models

import (
	"fmt"
	"unicode/utf8"
)

// ItemTitle is a value object for a listing's free-text title.
// Structural constraint: 1 to 140 characters.
type ItemTitle string

const (
	minItemTitleLength = 1
	maxItemTitleLength = 140
)

// NewItemTitle constructs a valid ItemTitle or returns an error.
func NewItemTitle(s string) (ItemTitle, error) {
	n := utf8.RuneCountInString(s)
	if n < minItemTitleLength {
		return "", fmt.Errorf("item title must be at least %d character", minItemTitleLength)
	}
	if n > maxItemTitleLength {
		return "", fmt.Errorf("item title must not exceed %d characters", maxItemTitleLength)
	}
	return ItemTitle(s), nil
}

// String returns the underlying string value.
func (t ItemTitle) String() string {
	return string(t)
}
