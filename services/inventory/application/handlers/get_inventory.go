package handlers

import (
	"net/http"

	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
)

// GetInventoryHandler handles GET /inventory requests.
type GetInventoryHandler struct {
	svc *appsvcs.Services
}

// NewGetInventoryHandler returns a GetInventoryHandler backed by the given services.
func NewGetInventoryHandler(svc *appsvcs.Services) *GetInventoryHandler {
	return &GetInventoryHandler{svc: svc}
}

// Execute returns every item grouped by location.
//
//	@Summary		List inventory
//	@Description	Returns all items grouped into cupboard, fridge and freezer sections
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	InventoryResponse
//	@Router			/inventory [get]
func (h *GetInventoryHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, toInventoryResponse(h.svc.Inventory.List()))
}
