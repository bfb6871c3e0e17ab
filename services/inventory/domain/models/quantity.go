package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MinQuantity is the smallest quantity an item can hold.
const MinQuantity = 1

// Quantity is an item count, always >= MinQuantity once constructed through
// ClampQuantity or NewQuantity.
type Quantity int

// NewQuantity clamps n to MinQuantity.
func NewQuantity(n int) Quantity {
	if n < MinQuantity {
		return MinQuantity
	}
	return Quantity(n)
}

// ClampQuantity converts raw form input into a Quantity. Non-numeric input,
// NaN, infinities and values below one all yield MinQuantity; fractions are
// truncated toward zero before clamping.
func ClampQuantity(raw string) Quantity {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return MinQuantity
	}
	f = math.Trunc(f)
	if f < MinQuantity {
		return MinQuantity
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return Quantity(f)
}

// Int returns the quantity as an int.
func (q Quantity) Int() int {
	return int(q)
}

func (q Quantity) String() string {
	return strconv.Itoa(int(q))
}

// FlexQuantity decodes a quantity given as a JSON number, a JSON string or
// null, applying the ClampQuantity rules. It always encodes as a number.
type FlexQuantity Quantity

// UnmarshalJSON implements json.Unmarshaler.
func (q *FlexQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = FlexQuantity(ClampQuantity(s))
		return nil
	}
	*q = FlexQuantity(ClampQuantity(string(data)))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (q FlexQuantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(q))), nil
}

// Quantity returns the clamped value.
func (q FlexQuantity) Quantity() Quantity {
	return NewQuantity(int(q))
}
