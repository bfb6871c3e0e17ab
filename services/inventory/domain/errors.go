package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no item carries the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemName indicates the item name is empty after trimming or violates other name rules.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidLocation indicates a location outside cupboard, fridge and freezer.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrDecode indicates the persisted slot value is not a valid serialized collection.
	ErrDecode = errors.New("decode stored items")

	// ErrPersistence indicates the slot write failed. The in-memory collection
	// keeps the mutation and diverges from storage until the next successful write.
	ErrPersistence = errors.New("persist items")
)
