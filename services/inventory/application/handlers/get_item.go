package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wherearethenoodles/pkg/errhttp"
	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
)

// GetItemHandler handles GET /inventory/items/{id} requests.
type GetItemHandler struct {
	svc          *appsvcs.Services
	hideInternal bool
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, hideInternal bool) *GetItemHandler {
	return &GetItemHandler{svc: svc, hideInternal: hideInternal}
}

// Execute returns one item.
//
//	@Summary		Get item
//	@Tags			inventory
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/inventory/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Inventory.Get(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, h.hideInternal)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
