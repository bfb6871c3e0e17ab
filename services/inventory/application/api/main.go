package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wherearethenoodles/pkg/app"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/session"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/view"
)

// InventoryRoutes registers the JSON inventory endpoints on the provided chi
// router, normally mounted under /api.
func InventoryRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	hideInternal := a.Config.Environment == config.EnvProduction
	r.Group(func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handlers.NewGetInventoryHandler(svcs).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs, hideInternal).Execute)
			r.Get("/items/{id}", handlers.NewGetItemHandler(svcs, hideInternal).Execute)
			r.Put("/items/{id}", handlers.NewPutItemHandler(svcs, hideInternal).Execute)
			r.Delete("/items/{id}", handlers.NewDeleteItemHandler(svcs, hideInternal).Execute)
		})
	})
}

// PageRoutes registers the HTML page and its form actions at the root.
func PageRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) error {
	renderer, err := view.NewRenderer(view.LayoutFormatter(a.Config.DateFormat), a.PageCache)
	if err != nil {
		return fmt.Errorf("page routes: %w", err)
	}
	page := handlers.NewPageHandler(svcs, renderer, session.NewPreferences(a.SessionStore, a.Logger), a.Logger)
	r.Get("/", page.Show)
	r.Post("/actions/{action}", page.Act)
	return nil
}
