// Package services contains stateless domain services for the inventory bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// ValidateName enforces the rules for an already constructed ItemName.
// Names built with models.NewItemName always pass; names decoded from storage
// may not.
//
// Business rules:
//   - Must not be empty or only whitespace
//   - No leading or trailing whitespace
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item name must not be empty")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	return nil
}

// ValidateItem checks every invariant of a single Item.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("id must be set")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.Quantity < models.MinQuantity {
		return fmt.Errorf("quantity must be at least %d", models.MinQuantity)
	}

	if !item.Location.Valid() {
		return fmt.Errorf("invalid location %q", item.Location)
	}

	return nil
}
