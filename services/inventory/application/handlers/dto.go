package handlers

import (
	"time"

	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// CreateItemRequest is the request body for POST /inventory/items.
type CreateItemRequest struct {
	Name           string              `json:"name"            validate:"required,notblank,max=255" example:"Rice"`
	Quantity       models.FlexQuantity `json:"quantity"        swaggertype:"integer"                example:"2"`
	Location       string              `json:"location"        validate:"required,location"         example:"cupboard"`
	ExpirationDate string              `json:"expiration_date" validate:"date"                      example:"2026-11-01"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /inventory/items/{id}.
type UpdateItemRequest struct {
	Name           string              `json:"name"            validate:"required,notblank,max=255" example:"Basmati rice"`
	Quantity       models.FlexQuantity `json:"quantity"        swaggertype:"integer"                example:"3"`
	ExpirationDate string              `json:"expiration_date" validate:"date"                      example:"2026-11-01"`
} // @name UpdateItemRequest

// ItemResponse is one inventory item.
type ItemResponse struct {
	ID             string    `json:"id"              example:"123e4567-e89b-12d3-a456-426614174000"`
	Name           string    `json:"name"            example:"Rice"`
	Quantity       int       `json:"quantity"        example:"2"`
	Location       string    `json:"location"        example:"cupboard"`
	ExpirationDate *string   `json:"expiration_date" example:"2026-11-01"`
	CreatedAt      time.Time `json:"created_at"      example:"2026-10-19T10:30:00Z"`
} // @name ItemResponse

// SectionResponse lists the items of one location in insertion order.
type SectionResponse struct {
	Location string         `json:"location" example:"cupboard"`
	Title    string         `json:"title"    example:"Cupboard"`
	Items    []ItemResponse `json:"items"`
} // @name SectionResponse

// InventoryResponse is the whole inventory grouped by location.
type InventoryResponse struct {
	Sections []SectionResponse `json:"sections"`
	Total    int               `json:"total" example:"5"`
} // @name InventoryResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Quantity:  item.Quantity.Int(),
		Location:  item.Location.String(),
		CreatedAt: item.CreatedAt,
	}
	if item.ExpirationDate != nil {
		s := item.ExpirationDate.String()
		resp.ExpirationDate = &s
	}
	return resp
}

func toInventoryResponse(items []*models.Item) InventoryResponse {
	resp := InventoryResponse{Total: len(items)}
	for _, loc := range models.Locations {
		sec := SectionResponse{Location: loc.String(), Title: loc.Title(), Items: []ItemResponse{}}
		for _, item := range items {
			if item.Location == loc {
				sec.Items = append(sec.Items, toItemResponse(item))
			}
		}
		resp.Sections = append(resp.Sections, sec)
	}
	return resp
}

// requestDate parses an already validated date field.
func requestDate(s string) *models.Date {
	d, _ := models.ParseOptionalDate(s)
	return d
}
