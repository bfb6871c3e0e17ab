package models

import (
	"fmt"
	"strings"
)

// Location is one of the three fixed storage compartments.
type Location string

const (
	Cupboard Location = "cupboard"
	Fridge   Location = "fridge"
	Freezer  Location = "freezer"
)

// Locations lists every location in display order.
var Locations = []Location{Cupboard, Fridge, Freezer}

// ParseLocation returns the Location named by s (case-insensitive, surrounding
// whitespace ignored).
func ParseLocation(s string) (Location, error) {
	loc := Location(strings.ToLower(strings.TrimSpace(s)))
	if !loc.Valid() {
		return "", fmt.Errorf("unknown location %q", s)
	}
	return loc, nil
}

// Valid reports whether l is one of the fixed locations.
func (l Location) Valid() bool {
	switch l {
	case Cupboard, Fridge, Freezer:
		return true
	}
	return false
}

// Title is the heading shown above the location's list.
func (l Location) Title() string {
	switch l {
	case Cupboard:
		return "Cupboard"
	case Fridge:
		return "Fridge"
	case Freezer:
		return "Freezer"
	}
	return string(l)
}

func (l Location) String() string {
	return string(l)
}
