// Package services contains stateless domain services for the inventory
// bounded context. They operate purely on domain types with no external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/services/inventory/domain/models"
)

// ValidateTitle enforces business rules beyond the structural length
// constraint of the ItemTitle constructor:
//   - no leading or trailing whitespace
//   - not only whitespace
//   - no control characters
//   - no consecutive spaces
func ValidateTitle(title models.ItemTitle) error {
	s := title.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item title must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item title must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item title must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("item title must not contain consecutive spaces")
	}

	return nil
}

// ValidateItemForCreation performs cross-field validation on a constructed
// Item before it is persisted.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateTitle(item.Title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	if item.CircleID == uuid.Nil {
		return fmt.Errorf("circle_id must be set")
	}

	if item.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id must be set")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
