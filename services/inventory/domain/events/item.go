package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// Watermill topics published after a successful inventory mutation.
const (
	TopicItemAdded   = "inventory.item.added"
	TopicItemEdited  = "inventory.item.edited"
	TopicItemDeleted = "inventory.item.deleted"
)

// Topics lists every inventory topic; subscribers register against all of them.
var Topics = []string{TopicItemAdded, TopicItemEdited, TopicItemDeleted}

// EventVersion is the schema version carried by every ItemChangedEvent.
const EventVersion = 1

// ItemChangedEvent is published after an item is added, edited or deleted and
// the collection has been written to the storage slot.
type ItemChangedEvent struct {
	EventID        uuid.UUID    `json:"event_id"` // Unique publish-time identifier for deduplication
	Version        int          `json:"version"`  // Schema version; increment on breaking changes
	ItemID         string       `json:"item_id"`
	Name           string       `json:"name"`
	Quantity       int          `json:"quantity"`
	Location       string       `json:"location"`
	ExpirationDate *models.Date `json:"expiration_date"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

// NewItemChangedEvent snapshots item into an event stamped with now.
func NewItemChangedEvent(item *models.Item, now time.Time) ItemChangedEvent {
	evt := ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    EventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Quantity:   item.Quantity.Int(),
		Location:   item.Location.String(),
		OccurredAt: now.UTC(),
	}
	if item.ExpirationDate != nil {
		d := *item.ExpirationDate
		evt.ExpirationDate = &d
	}
	return evt
}
