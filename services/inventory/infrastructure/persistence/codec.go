package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
	domainservices "github.com/ghuser/wherearethenoodles/services/inventory/domain/services"
)

// itemRecord is the persisted shape of an Item. Field names stay camelCase so
// the slot value is readable by any client that wrote the same key before.
type itemRecord struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Quantity       models.FlexQuantity `json:"quantity"`
	Location       string              `json:"location"`
	ExpirationDate models.OptionalDate `json:"expirationDate"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// Encode serializes the collection as a JSON array in collection order.
func Encode(items []*models.Item) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			ID:             item.ID,
			Name:           item.Name.String(),
			Quantity:       models.FlexQuantity(item.Quantity),
			Location:       item.Location.String(),
			ExpirationDate: models.OptionalDate{Date: item.ExpirationDate},
			CreatedAt:      item.CreatedAt.UTC(),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	return data, nil
}

// storedRecord is the lenient decode shape of an itemRecord. Dates stay raw so
// one unreadable value only affects its own record.
type storedRecord struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Quantity       models.FlexQuantity `json:"quantity"`
	Location       string              `json:"location"`
	ExpirationDate json.RawMessage     `json:"expirationDate"`
	CreatedAt      json.RawMessage     `json:"createdAt"`
}

// Decode parses a slot value. A value that is not a JSON array returns an
// error wrapping itemdomain.ErrDecode. Records that are not objects or that
// fail domainservices.ValidateItem (empty name, unknown location), and
// records repeating an earlier id, are dropped and counted. Records without
// an id get a fresh one; unreadable dates become no expiry and a zero
// CreatedAt.
func Decode(data []byte) (items []*models.Item, dropped int, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []*models.Item{}, 0, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", itemdomain.ErrDecode, err)
	}

	items = make([]*models.Item, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	for _, raw := range raws {
		var rec storedRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			dropped++
			continue
		}
		item := rec.item()
		if err := domainservices.ValidateItem(item); err != nil {
			dropped++
			continue
		}
		if _, dup := seen[item.ID]; dup {
			dropped++
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items, dropped, nil
}

func (rec storedRecord) item() *models.Item {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = models.NewItemID()
	}
	return &models.Item{
		ID:             id,
		Name:           models.ItemName(strings.TrimSpace(rec.Name)),
		Quantity:       rec.Quantity.Quantity(),
		Location:       models.Location(strings.ToLower(strings.TrimSpace(rec.Location))),
		ExpirationDate: storedDate(rec.ExpirationDate),
		CreatedAt:      storedTime(rec.CreatedAt),
	}
}

func storedDate(raw json.RawMessage) *models.Date {
	if len(raw) == 0 {
		return nil
	}
	var d models.OptionalDate
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return d.Date
}

func storedTime(raw json.RawMessage) time.Time {
	var t time.Time
	if len(raw) == 0 {
		return t
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return time.Time{}
	}
	return t
}
