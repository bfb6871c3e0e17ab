package dispatch_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/ghuser/wherearethenoodles/services/inventory/application/dispatch"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/view"
	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence"
	"github.com/ghuser/wherearethenoodles/services/inventory/infrastructure/persistence/memory"
)

func setup(t *testing.T) (*dispatch.Dispatcher, *services.InventoryService, *memory.Slot) {
	t.Helper()
	slot := memory.New()
	repo := persistence.NewItemRepository(slot, "wherearethenoodles.items", nil)
	svc, err := services.NewInventoryService(context.Background(), repo, nil)
	if err != nil {
		t.Fatalf("NewInventoryService: %v", err)
	}
	return dispatch.New(svc, nil), svc, slot
}

func run(t *testing.T, d *dispatch.Dispatcher, st view.State, action dispatch.Action, p dispatch.Payload) view.State {
	t.Helper()
	next, err := d.Dispatch(context.Background(), st, dispatch.Command{Action: action, Payload: p})
	if err != nil {
		t.Fatalf("Dispatch(%s): %v", action, err)
	}
	return next
}

func TestDispatch_AddSwitchesTabAndFocuses(t *testing.T) {
	d, svc, _ := setup(t)
	st := view.State{Tab: models.Cupboard}

	st = run(t, d, st, dispatch.ActionAdd, dispatch.Payload{Name: "Milk", Quantity: "2", Location: "fridge", ExpirationDate: "2026-11-01"})

	items := svc.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if st.Tab != models.Fridge {
		t.Errorf("Tab: got %q, want fridge", st.Tab)
	}
	if st.Focus != items[0].ID {
		t.Errorf("Focus: got %q, want %q", st.Focus, items[0].ID)
	}
	if items[0].Quantity != 2 || items[0].ExpirationDate == nil || items[0].ExpirationDate.String() != "2026-11-01" {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestDispatch_AddValidationIsSilent(t *testing.T) {
	tests := []struct {
		name    string
		payload dispatch.Payload
	}{
		{"blank name", dispatch.Payload{Name: "   ", Location: "cupboard"}},
		{"unknown location", dispatch.Payload{Name: "Rice", Location: "attic"}},
		{"empty location", dispatch.Payload{Name: "Rice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc, _ := setup(t)
			st := view.State{Tab: models.Freezer, Editing: []string{"x"}}

			next := run(t, d, st, dispatch.ActionAdd, tt.payload)

			if len(svc.List()) != 0 {
				t.Error("nothing should be added")
			}
			if next.Tab != models.Freezer || !next.IsEditing("x") || next.Focus != "" {
				t.Errorf("state changed: %+v", next)
			}
		})
	}
}

func TestDispatch_AddClampsQuantityAndIgnoresBadDate(t *testing.T) {
	d, svc, _ := setup(t)
	run(t, d, view.State{Tab: models.Cupboard}, dispatch.ActionAdd,
		dispatch.Payload{Name: "Rice", Quantity: "abc", Location: "cupboard", ExpirationDate: "soon"})

	item := svc.List()[0]
	if item.Quantity != 1 {
		t.Errorf("Quantity: got %d, want 1", item.Quantity)
	}
	if item.ExpirationDate != nil {
		t.Errorf("ExpirationDate: got %v, want nil", item.ExpirationDate)
	}
}

func TestDispatch_EditSaveCancel(t *testing.T) {
	d, svc, _ := setup(t)
	milk, err := svc.Add(context.Background(), services.AddInput{Name: "Milk", Quantity: 1, Location: models.Fridge})
	if err != nil {
		t.Fatal(err)
	}
	st := view.State{Tab: models.Fridge}

	st = run(t, d, st, dispatch.ActionEdit, dispatch.Payload{ID: milk.ID})
	if !st.IsEditing(milk.ID) {
		t.Fatal("row should be editing after edit")
	}
	if rev := svc.Revision(); rev != 1 {
		t.Errorf("edit must not touch the store, revision %d", rev)
	}

	st = run(t, d, st, dispatch.ActionSave, dispatch.Payload{ID: milk.ID, Name: "Oat milk", Quantity: "3"})
	if st.IsEditing(milk.ID) {
		t.Error("row should leave editing after save")
	}
	got, err := svc.Get(milk.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Oat milk" || got.Quantity != 3 || !got.CreatedAt.Equal(milk.CreatedAt) || got.Location != models.Fridge {
		t.Errorf("unexpected item after save %+v", got)
	}

	st = run(t, d, st, dispatch.ActionEdit, dispatch.Payload{ID: milk.ID})
	st = run(t, d, st, dispatch.ActionCancel, dispatch.Payload{ID: milk.ID})
	if st.IsEditing(milk.ID) {
		t.Error("row should leave editing after cancel")
	}
}

func TestDispatch_SaveEmptyNameKeepsDraft(t *testing.T) {
	d, svc, _ := setup(t)
	milk, err := svc.Add(context.Background(), services.AddInput{Name: "Milk", Quantity: 1, Location: models.Fridge})
	if err != nil {
		t.Fatal(err)
	}
	st := view.State{Tab: models.Fridge, Editing: []string{milk.ID}}

	st = run(t, d, st, dispatch.ActionSave, dispatch.Payload{ID: milk.ID, Name: "  ", Quantity: "5"})

	if !st.IsEditing(milk.ID) {
		t.Fatal("row should stay editing")
	}
	if draft := st.Drafts[milk.ID]; draft.Quantity != "5" || draft.Name != "  " {
		t.Errorf("draft: got %+v", draft)
	}
	got, _ := svc.Get(milk.ID)
	if got.Name != "Milk" || got.Quantity != 1 {
		t.Errorf("item changed: %+v", got)
	}
}

func TestDispatch_RowsResolveIndependently(t *testing.T) {
	d, svc, _ := setup(t)
	a, _ := svc.Add(context.Background(), services.AddInput{Name: "A", Quantity: 1, Location: models.Fridge})
	b, _ := svc.Add(context.Background(), services.AddInput{Name: "B", Quantity: 1, Location: models.Fridge})
	st := view.State{Tab: models.Fridge, Editing: []string{a.ID, b.ID}}

	st = run(t, d, st, dispatch.ActionSave, dispatch.Payload{ID: b.ID, Name: "B2", Quantity: "1"})

	if !st.IsEditing(a.ID) || st.IsEditing(b.ID) {
		t.Errorf("Editing: got %v, want only %s", st.Editing, a.ID)
	}
}

func TestDispatch_UnknownIDs(t *testing.T) {
	d, svc, _ := setup(t)
	st := view.State{Tab: models.Cupboard, Editing: []string{"ghost"}}

	st = run(t, d, st, dispatch.ActionEdit, dispatch.Payload{ID: "nobody"})
	if st.IsEditing("nobody") {
		t.Error("unknown id must not enter editing")
	}
	st = run(t, d, st, dispatch.ActionSave, dispatch.Payload{ID: "ghost", Name: "X"})
	if st.IsEditing("ghost") {
		t.Error("saving an unknown id should leave editing")
	}
	run(t, d, st, dispatch.ActionDelete, dispatch.Payload{ID: "nobody"})
	if svc.Revision() != 0 {
		t.Errorf("store touched, revision %d", svc.Revision())
	}
}

func TestDispatch_DeletePreservesOrder(t *testing.T) {
	d, svc, _ := setup(t)
	first, _ := svc.Add(context.Background(), services.AddInput{Name: "First", Quantity: 1, Location: models.Fridge})
	second, _ := svc.Add(context.Background(), services.AddInput{Name: "Second", Quantity: 1, Location: models.Fridge})
	st := view.State{Tab: models.Fridge, Editing: []string{first.ID}}

	st = run(t, d, st, dispatch.ActionDelete, dispatch.Payload{ID: first.ID})

	items := svc.ByLocation(models.Fridge)
	if len(items) != 1 || items[0].ID != second.ID {
		t.Errorf("fridge: got %v", items)
	}
	if st.IsEditing(first.ID) {
		t.Error("deleted row should not stay editing")
	}
}

func TestDispatch_PersistFailurePropagates(t *testing.T) {
	d, svc, slot := setup(t)
	milk, _ := svc.Add(context.Background(), services.AddInput{Name: "Milk", Quantity: 1, Location: models.Fridge})
	slot.FailWrites(errors.New("disk full"))

	tests := []struct {
		action  dispatch.Action
		payload dispatch.Payload
	}{
		{dispatch.ActionAdd, dispatch.Payload{Name: "Rice", Location: "cupboard"}},
		{dispatch.ActionSave, dispatch.Payload{ID: milk.ID, Name: "Oat milk"}},
		{dispatch.ActionDelete, dispatch.Payload{ID: milk.ID}},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), view.State{Tab: models.Fridge}, dispatch.Command{Action: tt.action, Payload: tt.payload})
			if !errors.Is(err, itemdomain.ErrPersistence) {
				t.Errorf("got %v, want ErrPersistence", err)
			}
		})
	}
}

func TestDispatch_UnknownAction(t *testing.T) {
	d, _, _ := setup(t)
	st := view.State{Tab: models.Fridge}
	next, err := d.Dispatch(context.Background(), st, dispatch.Command{Action: "explode"})
	if !errors.Is(err, dispatch.ErrUnknownAction) {
		t.Fatalf("got %v, want ErrUnknownAction", err)
	}
	if next.Tab != models.Fridge {
		t.Errorf("state should be returned unchanged, got %+v", next)
	}
}

func TestCommandFromForm(t *testing.T) {
	values := url.Values{
		"id":             {" abc "},
		"name":           {" Rice "},
		"quantity":       {"2"},
		"location":       {"cupboard"},
		"expirationDate": {"2026-01-02"},
	}
	cmd := dispatch.CommandFromForm("add", values)
	want := dispatch.Command{
		Action:  dispatch.ActionAdd,
		Payload: dispatch.Payload{ID: "abc", Name: " Rice ", Quantity: "2", Location: "cupboard", ExpirationDate: "2026-01-02"},
	}
	if cmd != want {
		t.Errorf("got %+v, want %+v", cmd, want)
	}
}
