package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wherearethenoodles/pkg/errhttp"
	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	pkgvalidator "github.com/ghuser/wherearethenoodles/pkg/validator"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
)

// PutItemHandler handles PUT /inventory/items/{id} requests.
type PutItemHandler struct {
	svc          *appsvcs.Services
	hideInternal bool
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, hideInternal bool) *PutItemHandler {
	return &PutItemHandler{svc: svc, hideInternal: hideInternal}
}

// Execute replaces name, quantity and expiration date of an item. The
// location and creation time never change.
//
//	@Summary		Update item
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Editable item fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/inventory/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.Edit(r.Context(), chi.URLParam(r, "id"), appsvcs.EditInput{
		Name:           req.Name,
		Quantity:       req.Quantity.Quantity(),
		ExpirationDate: requestDate(req.ExpirationDate),
	})
	if err != nil {
		errhttp.WriteError(w, err, h.hideInternal)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
