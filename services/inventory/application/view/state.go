package view

import (
	"net/url"
	"slices"
	"strings"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// Draft holds the raw, unsaved values of a row's edit form.
type Draft struct {
	Name           string
	Quantity       string
	ExpirationDate string
}

// State is the per-request view state: which tab is active and which rows
// are in edit mode. It travels with every request in the "tab" and repeated
// "editing" fields and is never stored on the server.
type State struct {
	Tab     models.Location
	Editing []string         // ids of rows in edit mode, in the order they entered it
	Drafts  map[string]Draft // submitted drafts for editing rows; others copy the item
	Focus   string           // id of the row to focus after rendering
}

// DefaultTab is the tab shown when a request names none.
const DefaultTab = models.Cupboard

// ParseState reads the view state from form or query values. Unknown tabs
// fall back to fallback; empty and repeated ids are dropped.
func ParseState(values url.Values, fallback models.Location) State {
	tab, err := models.ParseLocation(values.Get("tab"))
	if err != nil {
		tab = fallback
	}
	if !tab.Valid() {
		tab = DefaultTab
	}
	st := State{Tab: tab}
	for _, id := range values["editing"] {
		st.StartEditing(strings.TrimSpace(id))
	}
	st.Focus = strings.TrimSpace(values.Get("focus"))
	return st
}

// IsEditing reports whether row id is in edit mode.
func (s State) IsEditing(id string) bool {
	return slices.Contains(s.Editing, id)
}

// StartEditing puts row id into edit mode.
func (s *State) StartEditing(id string) {
	if id == "" || s.IsEditing(id) {
		return
	}
	s.Editing = append(s.Editing, id)
}

// StopEditing leaves edit mode for row id and drops its draft.
func (s *State) StopEditing(id string) {
	if i := slices.Index(s.Editing, id); i >= 0 {
		s.Editing = slices.Delete(slices.Clone(s.Editing), i, i+1)
	}
	if _, ok := s.Drafts[id]; ok {
		drafts := make(map[string]Draft, len(s.Drafts))
		for k, v := range s.Drafts {
			if k != id {
				drafts[k] = v
			}
		}
		s.Drafts = drafts
	}
}

// KeepDraft stores a submitted draft for row id, which stays in edit mode.
func (s *State) KeepDraft(id string, d Draft) {
	s.StartEditing(id)
	drafts := make(map[string]Draft, len(s.Drafts)+1)
	for k, v := range s.Drafts {
		drafts[k] = v
	}
	drafts[id] = d
	s.Drafts = drafts
}

// Cacheable reports whether a page for this state depends only on the store
// revision and Key.
func (s State) Cacheable() bool {
	return len(s.Drafts) == 0
}

// Key is a canonical encoding of the tab, editing set and focus.
func (s State) Key() string {
	editing := slices.Clone(s.Editing)
	slices.Sort(editing)
	return "tab=" + s.Tab.String() + "&editing=" + strings.Join(editing, ",") + "&focus=" + s.Focus
}

// Values encodes the state as query values, dropping drafts.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set("tab", s.Tab.String())
	for _, id := range s.Editing {
		v.Add("editing", id)
	}
	if s.Focus != "" {
		v.Set("focus", s.Focus)
	}
	return v
}
