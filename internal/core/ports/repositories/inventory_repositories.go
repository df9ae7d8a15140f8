package repositories

import (
	"context"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// ListItems retrieves the full item collection ordered by id.
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// UpdateItem overwrites name, price and quantity of an existing item.
	UpdateItem(ctx context.Context, item domain.Item) error

	// InsertItem creates a new item. A nil quantity leaves the default to the store.
	InsertItem(ctx context.Context, item domain.NewItem) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
// This is a facade for clients that need access to all operations
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}

// ItemFinder looks up a single item.
type ItemFinder interface {
	// FindItemByID returns apperrors.ErrNotFound when no item has the id.
	FindItemByID(ctx context.Context, id int64) (*domain.Item, error)
}

// InventoryRepositoryWithLookup extends InventoryRepositoryFacade with single-item lookups
type InventoryRepositoryWithLookup interface {
	InventoryRepositoryFacade
	ItemFinder
}
