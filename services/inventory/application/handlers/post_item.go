package handlers

import (
	"net/http"

	"github.com/ghuser/wherearethenoodles/pkg/errhttp"
	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	pkgvalidator "github.com/ghuser/wherearethenoodles/pkg/validator"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// PostItemHandler handles POST /inventory/items requests.
type PostItemHandler struct {
	svc          *appsvcs.Services
	hideInternal bool
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, hideInternal bool) *PostItemHandler {
	return &PostItemHandler{svc: svc, hideInternal: hideInternal}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Adds an item to a location. Quantity accepts a number or a string and is clamped to at least 1.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/inventory/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	loc, _ := models.ParseLocation(req.Location)
	item, err := h.svc.Inventory.Add(r.Context(), appsvcs.AddInput{
		Name:           req.Name,
		Quantity:       req.Quantity.Quantity(),
		Location:       loc,
		ExpirationDate: requestDate(req.ExpirationDate),
	})
	if err != nil {
		errhttp.WriteError(w, err, h.hideInternal)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
