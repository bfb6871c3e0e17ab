package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/wherearethenoodles/pkg/logger"
	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/repositories"
)

// ChangeKind names the mutation that produced a change notification.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeEdited  ChangeKind = "edited"
	ChangeDeleted ChangeKind = "deleted"
)

// ChangeHook is called after a mutation has been written to storage. Hooks
// run under the store lock, in registration order, and must not call back
// into the InventoryService. item is a copy.
type ChangeHook func(ctx context.Context, kind ChangeKind, item *models.Item)

// AddInput carries the fields of a new item. Name is raw user input; it is
// trimmed and validated by Add.
type AddInput struct {
	Name           string
	Quantity       models.Quantity
	Location       models.Location
	ExpirationDate *models.Date
}

// EditInput carries the editable fields of an existing item.
type EditInput struct {
	Name           string
	Quantity       models.Quantity
	ExpirationDate *models.Date
}

// InventoryService owns the authoritative in-memory collection. Every
// mutation is a read-modify-write under one mutex followed by a full write
// of the collection to the repository.
type InventoryService struct {
	mu       sync.Mutex
	repo     repositories.ItemRepository
	items    []*models.Item
	revision uint64
	hooks    []ChangeHook
	log      logger.Logger
	metrics  *inventoryMetrics
	now      func() time.Time
}

// NewInventoryService loads the persisted collection through repo. A slot
// that cannot be read is an error; an empty or malformed one is not.
func NewInventoryService(ctx context.Context, repo repositories.ItemRepository, log logger.Logger) (*InventoryService, error) {
	if log == nil {
		log = logger.Discard()
	}
	m, err := newInventoryMetrics()
	if err != nil {
		return nil, err
	}
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	log.InfoContext(ctx, "inventory loaded", "items", len(items))
	return &InventoryService{
		repo:    repo,
		items:   items,
		log:     log,
		metrics: m,
		now:     time.Now,
	}, nil
}

// OnChange registers a hook called after every persisted mutation.
func (s *InventoryService) OnChange(h ChangeHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Add validates in and appends a new item. An empty name is rejected with
// ErrInvalidItemName and an unknown location with ErrInvalidLocation; in both
// cases nothing changes. The returned item is a copy.
func (s *InventoryService) Add(ctx context.Context, in AddInput) (*models.Item, error) {
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}
	if !in.Location.Valid() {
		return nil, fmt.Errorf("%w: %q", itemdomain.ErrInvalidLocation, in.Location)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.NewItem(name, in.Quantity, in.Location, in.ExpirationDate)
	item.CreatedAt = s.now().UTC()
	for s.indexOf(item.ID) >= 0 {
		item.ID = models.NewItemID()
	}
	s.items = append(s.items, item)
	s.revision++

	if err := s.persist(ctx); err != nil {
		return item.Clone(), err
	}
	s.metrics.added.Add(ctx, 1, metric.WithAttributes(attribute.String("location", item.Location.String())))
	s.notify(ctx, ChangeAdded, item)
	return item.Clone(), nil
}

// Edit replaces name, quantity and expiration date of the item with id,
// keeping its id, location and creation time. An unknown id yields
// ErrItemNotFound and an empty name ErrInvalidItemName, both without change.
func (s *InventoryService) Edit(ctx context.Context, id string, in EditInput) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrItemNotFound, id)
	}
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	item := s.items[i]
	item.Apply(name, in.Quantity, in.ExpirationDate)
	s.revision++

	if err := s.persist(ctx); err != nil {
		return item.Clone(), err
	}
	s.metrics.edited.Add(ctx, 1, metric.WithAttributes(attribute.String("location", item.Location.String())))
	s.notify(ctx, ChangeEdited, item)
	return item.Clone(), nil
}

// Delete removes the item with id. Deleting an unknown id is a no-op that
// neither writes nor fails.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	item := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.revision++

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.metrics.deleted.Add(ctx, 1, metric.WithAttributes(attribute.String("location", item.Location.String())))
	s.notify(ctx, ChangeDeleted, item)
	return nil
}

// Get returns a copy of the item with id or ErrItemNotFound.
func (s *InventoryService) Get(id string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", itemdomain.ErrItemNotFound, id)
	}
	return s.items[i].Clone(), nil
}

// List returns copies of every item in insertion order.
func (s *InventoryService) List() []*models.Item {
	items, _ := s.Snapshot()
	return items
}

// ByLocation returns copies of the items stored in loc, in insertion order.
func (s *InventoryService) ByLocation(loc models.Location) []*models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Location == loc {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Snapshot returns copies of every item together with the revision they
// belong to.
func (s *InventoryService) Snapshot() ([]*models.Item, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Item, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out, s.revision
}

// Revision counts in-memory mutations since start-up.
func (s *InventoryService) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *InventoryService) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item *models.Item) bool { return item.ID == id })
}

// persist writes the whole collection. On failure the in-memory state is
// kept and the caller gets the error; nothing is retried.
func (s *InventoryService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.metrics.persistFailures.Add(ctx, 1)
		s.log.ErrorContext(ctx, "failed to persist inventory", "error", err, "items", len(s.items))
		return err
	}
	return nil
}

func (s *InventoryService) notify(ctx context.Context, kind ChangeKind, item *models.Item) {
	for _, h := range s.hooks {
		h(ctx, kind, item.Clone())
	}
}

type inventoryMetrics struct {
	added           metric.Int64Counter
	edited          metric.Int64Counter
	deleted         metric.Int64Counter
	persistFailures metric.Int64Counter
}

func newInventoryMetrics() (*inventoryMetrics, error) {
	meter := otel.Meter("inventory")
	var m inventoryMetrics
	var err error
	if m.added, err = meter.Int64Counter("inventory.items.added",
		metric.WithDescription("Items added to the inventory")); err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	if m.edited, err = meter.Int64Counter("inventory.items.edited",
		metric.WithDescription("Items edited in place")); err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	if m.deleted, err = meter.Int64Counter("inventory.items.deleted",
		metric.WithDescription("Items removed from the inventory")); err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	if m.persistFailures, err = meter.Int64Counter("inventory.persist.failures",
		metric.WithDescription("Failed writes of the inventory to the storage slot")); err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}
	return &m, nil
}
