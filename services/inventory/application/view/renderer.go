package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// PageTitle heads every rendered page.
const PageTitle = "Where are the noodles?"

// Page is the data of one full HTML page.
type Page struct {
	Title     string
	Error     string
	EmptyText string
	Board     Board
}

type rowData struct {
	State State
	Row   Row
}

// Renderer turns a projected Board into HTML. Pages that depend only on the
// store revision and view state are kept in an LRU.
type Renderer struct {
	tmpl   *template.Template
	format DateFormatter
	pages  *cache.PageCache
}

// NewRenderer parses the embedded templates. pages may be nil to disable
// page caching.
func NewRenderer(format DateFormatter, pages *cache.PageCache) (*Renderer, error) {
	tmpl, err := template.New("inventory").Funcs(template.FuncMap{
		"rowForm": func(b Board, r Row) rowData { return rowData{State: b.State, Row: r} },
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if format == nil {
		format = LayoutFormatter("")
	}
	return &Renderer{tmpl: tmpl, format: format, pages: pages}, nil
}

// Render writes p as a full HTML document.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = PageTitle
	}
	if p.EmptyText == "" {
		p.EmptyText = EmptyText
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderBoard projects items for state and renders the page, using the page
// cache when the result depends only on (revision, state key).
func (r *Renderer) RenderBoard(items []*models.Item, revision uint64, state State) ([]byte, error) {
	key := cache.PageKey{Revision: revision, State: state.Key()}
	cacheable := state.Cacheable()
	if cacheable {
		if page, ok := r.pages.Get(key); ok {
			return page, nil
		}
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, Page{Board: Project(items, state, r.format)}); err != nil {
		return nil, err
	}
	page := buf.Bytes()
	if cacheable {
		r.pages.Put(key, page)
	}
	return page, nil
}

// RenderError renders the page with an error banner and no cache.
func (r *Renderer) RenderError(items []*models.Item, state State, message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, Page{Error: message, Board: Project(items, state, r.format)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
