package persistence

import (
	"context"
	"fmt"

	"github.com/ghuser/wherearethenoodles/pkg/logger"
	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository on top of a single
// storage slot: the whole collection lives under one key as a JSON array.
type ItemRepository struct {
	slot repositories.Slot
	key  string
	log  logger.Logger
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository returns an ItemRepository reading and writing key on slot.
func NewItemRepository(slot repositories.Slot, key string, log logger.Logger) *ItemRepository {
	if log == nil {
		log = logger.Discard()
	}
	return &ItemRepository{slot: slot, key: key, log: log}
}

// Load reads the collection. A missing key and an undecodable value both
// yield an empty collection; the decode failure is only logged. Errors from
// the slot itself are returned.
func (r *ItemRepository) Load(ctx context.Context) ([]*models.Item, error) {
	raw, ok, err := r.slot.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", r.key, err)
	}
	if !ok {
		return []*models.Item{}, nil
	}

	items, dropped, err := Decode(raw)
	if err != nil {
		r.log.WarnContext(ctx, "stored items unreadable, starting with an empty inventory",
			"key", r.key, "error", err)
		return []*models.Item{}, nil
	}
	if dropped > 0 {
		r.log.WarnContext(ctx, "dropped invalid stored items", "key", r.key, "dropped", dropped)
	}
	return items, nil
}

// Save overwrites the slot with the full collection. Failures wrap
// itemdomain.ErrPersistence.
func (r *ItemRepository) Save(ctx context.Context, items []*models.Item) error {
	data, err := Encode(items)
	if err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrPersistence, err)
	}
	if err := r.slot.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%w: write slot %s: %w", itemdomain.ErrPersistence, r.key, err)
	}
	return nil
}
