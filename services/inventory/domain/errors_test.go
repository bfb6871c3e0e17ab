package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrItemNotFound, ErrInvalidItemName, ErrInvalidLocation, ErrDecode, ErrPersistence}
	for i, a := range all {
		if a == nil {
			t.Fatalf("sentinel %d must not be nil", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %d and %d must not match each other", i, j)
			}
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrItemNotFound.Error() != "item not found" {
		t.Fatalf("unexpected message: %q", ErrItemNotFound.Error())
	}
	if ErrInvalidItemName.Error() != "invalid item name" {
		t.Fatalf("unexpected message: %q", ErrInvalidItemName.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrDecode, errors.New("unexpected end of JSON input"))
	if !errors.Is(wrapped2, ErrDecode) {
		t.Fatal("errors.Is must match double-wrapped ErrDecode")
	}
}
