package view

import (
	"strconv"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// EmptyText is shown in a section without items.
const EmptyText = "No items"

// DefaultDateLayout formats expiration dates when none is configured.
const DefaultDateLayout = "1/2/2006"

// DateFormatter renders an expiration date for display.
type DateFormatter func(models.Date) string

// LayoutFormatter formats dates with a time layout string.
func LayoutFormatter(layout string) DateFormatter {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return func(d models.Date) string { return d.Format(layout) }
}

// Board is the projection of the collection for one view state.
type Board struct {
	Tab      models.Location
	Sections []Section
	State    State
}

// Section lists the items of one location.
type Section struct {
	Location models.Location
	Title    string
	Href     string // link activating this section, keeping rows in edit mode
	Active   bool
	Empty    bool
	Rows     []Row
}

// Row is one item line, either a summary or an inline edit form.
type Row struct {
	ID       string
	Name     string
	Quantity int
	Expiry   string // formatted; empty when the item has no expiration date
	Editing  bool
	Focus    bool
	Draft    Draft
}

// Summary is the row text "<name> x<quantity>".
func (r Row) Summary() string {
	return r.Name + " x" + strconv.Itoa(r.Quantity)
}

// Project groups items by location in the fixed order cupboard, fridge,
// freezer, keeping insertion order inside each section. Rows named in
// state.Editing carry a draft: the submitted one if present, otherwise a copy
// of the item's current values. Editing ids without a matching item are
// ignored.
func Project(items []*models.Item, state State, format DateFormatter) Board {
	if format == nil {
		format = LayoutFormatter("")
	}
	board := Board{Tab: state.Tab, State: state}
	for _, loc := range models.Locations {
		sec := Section{
			Location: loc,
			Title:    loc.Title(),
			Href:     tabHref(state, loc),
			Active:   loc == state.Tab,
		}
		for _, item := range items {
			if item.Location != loc {
				continue
			}
			sec.Rows = append(sec.Rows, projectRow(item, state, format))
		}
		sec.Empty = len(sec.Rows) == 0
		board.Sections = append(board.Sections, sec)
	}
	return board
}

func projectRow(item *models.Item, state State, format DateFormatter) Row {
	row := Row{
		ID:       item.ID,
		Name:     item.Name.String(),
		Quantity: item.Quantity.Int(),
		Editing:  state.IsEditing(item.ID),
		Focus:    state.Focus == item.ID,
	}
	if item.ExpirationDate != nil {
		row.Expiry = format(*item.ExpirationDate)
	}
	if !row.Editing {
		return row
	}
	if d, ok := state.Drafts[item.ID]; ok {
		row.Draft = d
		return row
	}
	row.Draft = Draft{Name: row.Name, Quantity: strconv.Itoa(row.Quantity)}
	if item.ExpirationDate != nil {
		row.Draft.ExpirationDate = item.ExpirationDate.String()
	}
	return row
}

func tabHref(state State, loc models.Location) string {
	state.Tab = loc
	state.Focus = ""
	return "/?" + state.Values().Encode()
}
