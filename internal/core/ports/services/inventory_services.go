package services

import (
	"context"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
)

// InventoryReaderSvc defines read operations served by the command bridge
type InventoryReaderSvc interface {
	// ListItems retrieves every item, never nil.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetItem retrieves one item by id.
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
}

// InventoryWriterSvc defines write operations served by the command bridge
type InventoryWriterSvc interface {
	// UpdateItem applies a full-row update after business validation.
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest) error

	// InsertItem creates an item after business validation.
	InsertItem(ctx context.Context, req dto.InsertItemRequest) error
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
