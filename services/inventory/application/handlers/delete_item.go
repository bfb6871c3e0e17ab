package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wherearethenoodles/pkg/errhttp"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /inventory/items/{id} requests.
type DeleteItemHandler struct {
	svc          *appsvcs.Services
	hideInternal bool
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, hideInternal bool) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, hideInternal: hideInternal}
}

// Execute removes an item. Unknown ids succeed too.
//
//	@Summary		Delete item
//	@Tags			inventory
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		500	{object}	ErrorResponse
//	@Router			/inventory/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Inventory.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err, h.hideInternal)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
