package dto

import (
	"encoding/json"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Command names understood by the inventory command bridge.
const (
	CommandListItems  = "list-items"
	CommandGetItem    = "get-item"
	CommandUpdateItem = "update-item"
	CommandInsertItem = "insert-item"
)

// GetItemRequest selects one item.
type GetItemRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

// UpdateItemRequest overwrites every editable column of an item.
type UpdateItemRequest struct {
	ID        int64           `json:"id" binding:"required,gt=0"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"` // Checked for sign by the service
	Quantity  int64           `json:"quantity" binding:"gte=0"`
}

// InsertItemRequest creates an item. Quantity is omitted to use the table default.
type InsertItemRequest struct {
	ID        int64           `json:"id" binding:"required,gt=0"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  *int64          `json:"quantity,omitempty" binding:"omitempty,gte=0"`
}

// ItemResponse is the wire form of an item.
type ItemResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
}

// CommandResponse is the envelope of every command reply.
// Exactly one of Data and Error is set.
type CommandResponse struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// ToItemResponse converts a domain Item to its wire form
func ToItemResponse(it domain.Item) ItemResponse {
	return ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Quantity:  it.Quantity,
	}
}

// ToListItemResponse converts domain Items to their wire form, never nil
func ToListItemResponse(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = ToItemResponse(it)
	}
	return res
}

// ToDomainItems converts wire items back to domain Items
func ToDomainItems(items []ItemResponse) []domain.Item {
	res := make([]domain.Item, len(items))
	for i, it := range items {
		res[i] = domain.Item{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}
	return res
}
