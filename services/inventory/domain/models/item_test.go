package models

import (
	"testing"
	"time"
)

func TestNewItem(t *testing.T) {
	exp := &Date{2026, time.November, 2}

	t.Run("returns item with non-empty ID", func(t *testing.T) {
		item := NewItem("Rice", 2, Cupboard, nil)
		if item.ID == "" {
			t.Fatal("expected non-empty ID")
		}
	})

	t.Run("copies fields", func(t *testing.T) {
		item := NewItem("Milk", 1, Fridge, exp)
		if item.Name != "Milk" || item.Quantity != 1 || item.Location != Fridge {
			t.Fatalf("unexpected item %+v", item)
		}
		if item.ExpirationDate == nil || *item.ExpirationDate != *exp {
			t.Fatalf("expected expiration %v, got %v", exp, item.ExpirationDate)
		}
		if item.ExpirationDate == exp {
			t.Fatal("expiration date must be copied, not aliased")
		}
	})

	t.Run("clamps quantity", func(t *testing.T) {
		item := NewItem("Peas", 0, Freezer, nil)
		if item.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", item.Quantity)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item := NewItem("Rice", 1, Cupboard, nil)
		after := time.Now().UTC()
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		a := NewItem("Rice", 1, Cupboard, nil)
		b := NewItem("Rice", 1, Cupboard, nil)
		if a.ID == b.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestItem_Apply(t *testing.T) {
	created := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	item := &Item{ID: "abc", Name: "Rice", Quantity: 2, Location: Cupboard, CreatedAt: created}

	exp := &Date{2027, time.January, 1}
	item.Apply("Brown rice", 0, exp)

	if item.ID != "abc" || item.Location != Cupboard || !item.CreatedAt.Equal(created) {
		t.Fatalf("identity fields changed: %+v", item)
	}
	if item.Name != "Brown rice" || item.Quantity != 1 || item.ExpirationDate == nil {
		t.Fatalf("editable fields not applied: %+v", item)
	}
}

func TestItem_ApplyBackfillsCreatedAt(t *testing.T) {
	item := &Item{ID: "legacy", Name: "Soup", Quantity: 1, Location: Cupboard}
	item.Apply("Soup", 1, nil)
	if item.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be back-filled")
	}
}

func TestItem_Clone(t *testing.T) {
	orig := NewItem("Ice", 1, Freezer, &Date{2026, time.May, 1})
	c := orig.Clone()
	c.ExpirationDate.Day = 9
	c.Name = "Other"
	if orig.ExpirationDate.Day != 1 || orig.Name != "Ice" {
		t.Fatal("clone shares state with the original")
	}
}
