package dto

import "github.com/SscSPs/pos_inventory_app/internal/core/domain"

// SearchRequest sets the screen's search term.
type SearchRequest struct {
	Term string `json:"term"`
}

// EditFieldRequest carries the new raw text of one row input.
type EditFieldRequest struct {
	Value string `json:"value"`
}

// RateRequest carries raw exchange-rate input.
type RateRequest struct {
	Rate string `json:"rate"`
}

// InsertFormRequest carries the raw add-product inputs.
type InsertFormRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// ToInsertForm converts the request to the screen's form type
func (r InsertFormRequest) ToInsertForm() domain.InsertForm {
	return domain.InsertForm{ID: r.ID, Name: r.Name, Price: r.Price, Quantity: r.Quantity}
}

// ScreenResponse wraps a render of the screen and the error of the action, if any.
type ScreenResponse struct {
	View  domain.InventoryView `json:"view"`
	Error string               `json:"error,omitempty"`
}
