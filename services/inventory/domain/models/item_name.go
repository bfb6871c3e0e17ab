package models

import (
	"errors"
	"strings"
)

// ItemName is a value object representing a valid item name: non-empty after
// trimming surrounding whitespace.
type ItemName string

var errEmptyItemName = errors.New("item name must not be empty")

// NewItemName trims s and constructs a valid ItemName or returns an error if
// nothing is left.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyItemName
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
