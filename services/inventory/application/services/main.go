package services

import (
	"context"
	"fmt"

	"github.com/ghuser/wherearethenoodles/pkg/app"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence"
)

// Services is the application-layer service container for the inventory
// bounded context. Build it once per process; the InventoryService holds the
// authoritative collection.
type Services struct {
	Inventory *InventoryService
}

// New loads the inventory from a.Storage and wires change publishing when an
// event bus is configured.
func New(ctx context.Context, a *app.Application) (*Services, error) {
	if a.Storage == nil {
		return nil, fmt.Errorf("inventory: no storage driver configured")
	}
	repo := persistence.NewItemRepository(a.Storage, a.Config.StorageKey, a.Logger)
	inv, err := NewInventoryService(ctx, repo, a.Logger)
	if err != nil {
		return nil, err
	}
	if a.EventBus != nil {
		inv.OnChange(PublishChanges(a.EventBus, a.Logger))
	}
	return &Services{Inventory: inv}, nil
}
