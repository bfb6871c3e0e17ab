package repositories

import (
	"context"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// Slot is a single string-keyed storage cell holding one serialized value.
// Drivers overwrite unconditionally on Set (last writer wins).
type Slot interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error
}

// ItemRepository loads and saves the whole item collection at once.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Load returns the persisted collection in stored order. A missing or
	// malformed value yields an empty collection.
	Load(ctx context.Context) ([]*models.Item, error)

	// Save overwrites the persisted collection with items.
	Save(ctx context.Context, items []*models.Item) error
}
