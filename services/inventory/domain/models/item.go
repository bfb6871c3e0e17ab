package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate of the inventory: one food record in one location.
type Item struct {
	ID             string
	Name           ItemName
	Quantity       Quantity
	Location       Location
	ExpirationDate *Date // nil when the item has no expiry
	CreatedAt      time.Time
}

// NewItem constructs an Item with a generated ID and the current timestamp.
func NewItem(name ItemName, qty Quantity, loc Location, exp *Date) *Item {
	return &Item{
		ID:             NewItemID(),
		Name:           name,
		Quantity:       NewQuantity(qty.Int()),
		Location:       loc,
		ExpirationDate: cloneDate(exp),
		CreatedAt:      time.Now().UTC(),
	}
}

// NewItemID returns a fresh opaque item identifier.
func NewItemID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	c.ExpirationDate = cloneDate(i.ExpirationDate)
	return &c
}

// Apply replaces the editable fields, keeping ID, Location and CreatedAt.
// A zero CreatedAt, possible on records written by older clients, is
// back-filled with the current time.
func (i *Item) Apply(name ItemName, qty Quantity, exp *Date) {
	i.Name = name
	i.Quantity = NewQuantity(qty.Int())
	i.ExpirationDate = cloneDate(exp)
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
