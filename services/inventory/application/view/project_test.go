package view_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/view"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

func item(id, name string, qty int, loc models.Location, exp *models.Date) *models.Item {
	return &models.Item{ID: id, Name: models.ItemName(name), Quantity: models.Quantity(qty), Location: loc, ExpirationDate: exp}
}

func TestProject_SectionsInFixedOrder(t *testing.T) {
	items := []*models.Item{
		item("1", "Peas", 1, models.Freezer, nil),
		item("2", "Rice", 2, models.Cupboard, nil),
	}
	board := view.Project(items, view.State{Tab: models.Cupboard}, nil)

	want := []models.Location{models.Cupboard, models.Fridge, models.Freezer}
	if len(board.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(board.Sections), len(want))
	}
	for i, loc := range want {
		sec := board.Sections[i]
		if sec.Location != loc {
			t.Errorf("section %d: got %s, want %s", i, sec.Location, loc)
		}
		if sec.Active != (loc == models.Cupboard) {
			t.Errorf("section %s: Active = %v", loc, sec.Active)
		}
	}
	if !board.Sections[1].Empty {
		t.Error("fridge should be empty")
	}
	if got := board.Sections[0].Rows[0].Summary(); got != "Rice x2" {
		t.Errorf("Summary: got %q, want %q", got, "Rice x2")
	}
}

func TestProject_InsertionOrderWithinSection(t *testing.T) {
	items := []*models.Item{
		item("a", "Milk", 1, models.Fridge, nil),
		item("b", "Peas", 1, models.Freezer, nil),
		item("c", "Eggs", 12, models.Fridge, nil),
	}
	rows := view.Project(items, view.State{Tab: models.Fridge}, nil).Sections[1].Rows
	if len(rows) != 2 || rows[0].ID != "a" || rows[1].ID != "c" {
		t.Fatalf("unexpected fridge rows %+v", rows)
	}
}

func TestProject_ExpiryFormatting(t *testing.T) {
	exp := &models.Date{Year: 2026, Month: time.March, Day: 7}
	items := []*models.Item{item("1", "Milk", 1, models.Fridge, exp), item("2", "Salt", 1, models.Cupboard, nil)}

	tests := []struct {
		name   string
		format view.DateFormatter
		want   string
	}{
		{"default layout", nil, "3/7/2026"},
		{"configured layout", view.LayoutFormatter("02 Jan 2006"), "07 Mar 2026"},
		{"empty layout falls back", view.LayoutFormatter(""), "3/7/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := view.Project(items, view.State{Tab: models.Fridge}, tt.format)
			if got := board.Sections[1].Rows[0].Expiry; got != tt.want {
				t.Errorf("Expiry: got %q, want %q", got, tt.want)
			}
			if got := board.Sections[0].Rows[0].Expiry; got != "" {
				t.Errorf("Expiry without date: got %q, want empty", got)
			}
		})
	}
}

func TestProject_EditingDrafts(t *testing.T) {
	exp := &models.Date{Year: 2026, Month: time.March, Day: 7}
	items := []*models.Item{
		item("1", "Milk", 2, models.Fridge, exp),
		item("2", "Eggs", 6, models.Fridge, nil),
		item("3", "Butter", 1, models.Fridge, nil),
	}
	state := view.State{Tab: models.Fridge, Editing: []string{"1", "2", "gone"}}
	state.KeepDraft("2", view.Draft{Name: "", Quantity: "7"})

	rows := view.Project(items, state, nil).Sections[1].Rows

	if !rows[0].Editing || rows[0].Draft != (view.Draft{Name: "Milk", Quantity: "2", ExpirationDate: "2026-03-07"}) {
		t.Errorf("row 1: got %+v, want draft copied from item", rows[0])
	}
	if !rows[1].Editing || rows[1].Draft != (view.Draft{Name: "", Quantity: "7"}) {
		t.Errorf("row 2: got %+v, want submitted draft", rows[1])
	}
	if rows[2].Editing {
		t.Errorf("row 3 should not be editing")
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		fallback    models.Location
		wantTab     models.Location
		wantEditing []string
		wantFocus   string
	}{
		{"explicit tab", "tab=fridge", models.Cupboard, models.Fridge, nil, ""},
		{"missing tab uses fallback", "", models.Freezer, models.Freezer, nil, ""},
		{"unknown tab uses fallback", "tab=attic", models.Fridge, models.Fridge, nil, ""},
		{"invalid fallback uses default", "", "", view.DefaultTab, nil, ""},
		{"editing dedup and blanks dropped", "tab=cupboard&editing=a&editing=&editing=b&editing=a", models.Cupboard, models.Cupboard, []string{"a", "b"}, ""},
		{"focus", "tab=freezer&focus=+a+", models.Cupboard, models.Freezer, nil, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			st := view.ParseState(values, tt.fallback)
			if st.Tab != tt.wantTab {
				t.Errorf("Tab: got %q, want %q", st.Tab, tt.wantTab)
			}
			if strings.Join(st.Editing, ",") != strings.Join(tt.wantEditing, ",") {
				t.Errorf("Editing: got %v, want %v", st.Editing, tt.wantEditing)
			}
			if st.Focus != tt.wantFocus {
				t.Errorf("Focus: got %q, want %q", st.Focus, tt.wantFocus)
			}
		})
	}
}

func TestState_ValuesRoundTrip(t *testing.T) {
	st := view.State{Tab: models.Freezer, Editing: []string{"b", "a"}, Focus: "c"}
	st.KeepDraft("b", view.Draft{Name: "x"})

	got := view.ParseState(st.Values(), models.Cupboard)
	if got.Key() != st.Key() {
		t.Errorf("key: got %q, want %q", got.Key(), st.Key())
	}
	if len(got.Drafts) != 0 {
		t.Errorf("drafts must not travel in the URL, got %v", got.Drafts)
	}
}

func TestState_StopEditingDoesNotAlias(t *testing.T) {
	st := view.State{Tab: models.Fridge}
	st.KeepDraft("a", view.Draft{Name: "x"})
	st.StartEditing("b")
	before := st

	st.StopEditing("a")

	if st.IsEditing("a") || !st.IsEditing("b") {
		t.Errorf("Editing: got %v", st.Editing)
	}
	if _, ok := st.Drafts["a"]; ok {
		t.Error("draft for a should be dropped")
	}
	if !before.IsEditing("a") || before.Drafts["a"].Name != "x" {
		t.Error("StopEditing modified the earlier copy of the state")
	}
	if !st.Cacheable() {
		t.Error("state without drafts should be cacheable")
	}
}

func TestState_KeyIgnoresEditingOrder(t *testing.T) {
	a := view.State{Tab: models.Fridge, Editing: []string{"x", "y"}}
	b := view.State{Tab: models.Fridge, Editing: []string{"y", "x"}}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	b.Focus = "x"
	if a.Key() == b.Key() {
		t.Error("focus should be part of the key")
	}
}

func TestRenderer_RenderBoard(t *testing.T) {
	r, err := view.NewRenderer(nil, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	exp := &models.Date{Year: 2026, Month: time.March, Day: 7}
	items := []*models.Item{item("rice-1", "Rice", 2, models.Cupboard, exp)}

	page, err := r.RenderBoard(items, 1, view.State{Tab: models.Cupboard})
	if err != nil {
		t.Fatalf("RenderBoard: %v", err)
	}
	html := string(page)
	for _, want := range []string{
		"Rice x2",
		"exp: 3/7/2026",
		view.EmptyText,
		`action="/actions/add"`,
		`action="/actions/delete"`,
		`name="id" value="rice-1"`,
		`<section id="fridge" hidden>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if got := strings.Count(html, view.EmptyText); got != 2 {
		t.Errorf("empty state count: got %d, want 2", got)
	}
}

func TestRenderer_EditForm(t *testing.T) {
	r, err := view.NewRenderer(nil, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	items := []*models.Item{item("m1", "Milk", 1, models.Fridge, nil)}
	state := view.State{Tab: models.Fridge, Editing: []string{"m1"}}

	page, err := r.RenderBoard(items, 1, state)
	if err != nil {
		t.Fatalf("RenderBoard: %v", err)
	}
	html := string(page)
	for _, want := range []string{
		`action="/actions/save"`,
		`formaction="/actions/cancel"`,
		`name="name" value="Milk"`,
		`name="editing" value="m1"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "Milk x1") {
		t.Error("editing row should not render its summary")
	}
}

func TestRenderer_EscapesNames(t *testing.T) {
	r, err := view.NewRenderer(nil, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	items := []*models.Item{item("x", "<script>", 1, models.Cupboard, nil)}
	page, err := r.RenderBoard(items, 1, view.State{Tab: models.Cupboard})
	if err != nil {
		t.Fatalf("RenderBoard: %v", err)
	}
	if strings.Contains(string(page), "<script>") {
		t.Error("item name rendered unescaped")
	}
}

func TestRenderer_PageCache(t *testing.T) {
	pages, err := cache.NewPageCache(8)
	if err != nil {
		t.Fatal(err)
	}
	r, err := view.NewRenderer(nil, pages)
	if err != nil {
		t.Fatal(err)
	}
	items := []*models.Item{item("1", "Rice", 1, models.Cupboard, nil)}
	state := view.State{Tab: models.Cupboard}

	if _, err := r.RenderBoard(items, 3, state); err != nil {
		t.Fatal(err)
	}
	if _, ok := pages.Get(cache.PageKey{Revision: 3, State: state.Key()}); !ok {
		t.Fatal("expected the page to be cached")
	}

	// same revision and state: served from cache even if items differ
	cached, err := r.RenderBoard(nil, 3, state)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cached), "Rice x1") {
		t.Error("expected cached page for the same revision")
	}

	drafty := state
	drafty.KeepDraft("1", view.Draft{Name: ""})
	if _, err := r.RenderBoard(items, 3, drafty); err != nil {
		t.Fatal(err)
	}
	if _, ok := pages.Get(cache.PageKey{Revision: 3, State: drafty.Key()}); ok {
		t.Error("pages with drafts must not be cached")
	}
}

func TestRenderer_RenderError(t *testing.T) {
	r, err := view.NewRenderer(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	page, err := r.RenderError(nil, view.State{Tab: models.Cupboard}, "Could not save the inventory")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `role="alert">Could not save the inventory`) {
		t.Error("error banner missing")
	}
}
