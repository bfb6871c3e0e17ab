// Package dispatch routes page actions to the inventory store and computes
// the view state of the next page.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/view"
	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// ErrUnknownAction is returned for an action name the dispatcher does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Action names a user intent posted by the page.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionSave   Action = "save"
	ActionCancel Action = "cancel"
	ActionDelete Action = "delete"
)

// Payload holds the raw form fields of an action. Which fields are read
// depends on the action.
type Payload struct {
	ID             string
	Name           string
	Quantity       string
	Location       string
	ExpirationDate string
}

// Command is one dispatched action.
type Command struct {
	Action  Action
	Payload Payload
}

// CommandFromForm builds a Command from posted form values.
func CommandFromForm(action string, values url.Values) Command {
	return Command{
		Action: Action(action),
		Payload: Payload{
			ID:             strings.TrimSpace(values.Get("id")),
			Name:           values.Get("name"),
			Quantity:       values.Get("quantity"),
			Location:       values.Get("location"),
			ExpirationDate: values.Get("expirationDate"),
		},
	}
}

// Store is the part of the inventory the dispatcher drives.
type Store interface {
	Add(ctx context.Context, in services.AddInput) (*models.Item, error)
	Edit(ctx context.Context, id string, in services.EditInput) (*models.Item, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (*models.Item, error)
}

// Dispatcher applies page actions to the store.
type Dispatcher struct {
	store Store
	log   logger.Logger
}

// New returns a Dispatcher over store.
func New(store Store, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Discard()
	}
	return &Dispatcher{store: store, log: log}
}

// Dispatch applies cmd and returns the view state of the next page.
// Validation failures are not errors: the state is returned unchanged, or
// with the submitted draft kept for save. Only storage failures and unknown
// actions are reported; on error the returned state is still usable for
// rendering.
func (d *Dispatcher) Dispatch(ctx context.Context, state view.State, cmd Command) (view.State, error) {
	state.Focus = ""
	p := cmd.Payload
	switch cmd.Action {
	case ActionAdd:
		return d.add(ctx, state, p)
	case ActionEdit:
		if _, err := d.store.Get(p.ID); err == nil {
			state.StartEditing(p.ID)
		}
		return state, nil
	case ActionSave:
		return d.save(ctx, state, p)
	case ActionCancel:
		state.StopEditing(p.ID)
		return state, nil
	case ActionDelete:
		state.StopEditing(p.ID)
		return state, d.store.Delete(ctx, p.ID)
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
}

func (d *Dispatcher) add(ctx context.Context, state view.State, p Payload) (view.State, error) {
	loc, err := models.ParseLocation(p.Location)
	if err != nil {
		d.log.DebugContext(ctx, "add ignored", "reason", err)
		return state, nil
	}
	item, err := d.store.Add(ctx, services.AddInput{
		Name:           p.Name,
		Quantity:       models.ClampQuantity(p.Quantity),
		Location:       loc,
		ExpirationDate: formDate(p.ExpirationDate),
	})
	switch {
	case isValidation(err):
		d.log.DebugContext(ctx, "add ignored", "reason", err)
		return state, nil
	case err != nil:
		return state, err
	}
	state.Tab = item.Location
	state.Focus = item.ID
	return state, nil
}

func (d *Dispatcher) save(ctx context.Context, state view.State, p Payload) (view.State, error) {
	draft := view.Draft{Name: p.Name, Quantity: p.Quantity, ExpirationDate: p.ExpirationDate}
	if strings.TrimSpace(p.Name) == "" {
		state.KeepDraft(p.ID, draft)
		return state, nil
	}
	_, err := d.store.Edit(ctx, p.ID, services.EditInput{
		Name:           p.Name,
		Quantity:       models.ClampQuantity(p.Quantity),
		ExpirationDate: formDate(p.ExpirationDate),
	})
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		state.StopEditing(p.ID)
		return state, nil
	case isValidation(err):
		d.log.DebugContext(ctx, "save ignored", "id", p.ID, "reason", err)
		state.KeepDraft(p.ID, draft)
		return state, nil
	case err != nil:
		state.StopEditing(p.ID)
		return state, err
	}
	state.StopEditing(p.ID)
	state.Focus = p.ID
	return state, nil
}

func isValidation(err error) bool {
	return errors.Is(err, itemdomain.ErrInvalidItemName) || errors.Is(err, itemdomain.ErrInvalidLocation)
}

// formDate reads a date input. Anything that is not a valid date means "no
// expiry".
func formDate(s string) *models.Date {
	d, err := models.ParseOptionalDate(s)
	if err != nil {
		return nil
	}
	return d
}
