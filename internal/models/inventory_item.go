package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the persisted row of the inventory_items table.
type InventoryItem struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"` // Reference currency
	Quantity  int64           `db:"quantity"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
