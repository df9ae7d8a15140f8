package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Item represents a priced inventory entry as held by the remote store.
type Item struct {
	ID        int64           `json:"id"`        // Stable, unique within a snapshot
	Name      string          `json:"name"`      // Non-empty
	UnitPrice decimal.Decimal `json:"unitPrice"` // Reference currency, >= 0
	Quantity  int64           `json:"quantity"`  // >= 0
}

// NewItem is the insert shape. A nil Quantity asks the backend to apply its default.
type NewItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  *int64          `json:"quantity,omitempty"`
}

// EditField names one of the three inline-editable columns of a row.
type EditField string

const (
	FieldName     EditField = "name"
	FieldPrice    EditField = "price"
	FieldQuantity EditField = "quantity"
)

// Valid reports whether f is one of the known editable fields.
func (f EditField) Valid() bool {
	switch f {
	case FieldName, FieldPrice, FieldQuantity:
		return true
	}
	return false
}

// EditBuffer holds the raw text of a row's inputs while an admin edits it.
type EditBuffer struct {
	Name     string
	Price    string
	Quantity string
}

// NewEditBuffer seeds a buffer from the snapshot values of it.
// The price keeps every stored decimal so an untouched field is resent as is.
func NewEditBuffer(it Item) *EditBuffer {
	return &EditBuffer{
		Name:     it.Name,
		Price:    it.UnitPrice.String(),
		Quantity: strconv.FormatInt(it.Quantity, 10),
	}
}

// Set writes value into the buffer column named by f.
func (b *EditBuffer) Set(f EditField, value string) {
	switch f {
	case FieldName:
		b.Name = value
	case FieldPrice:
		b.Price = value
	case FieldQuantity:
		b.Quantity = value
	}
}

// InsertForm is the raw text of the add-product inputs.
type InsertForm struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}
