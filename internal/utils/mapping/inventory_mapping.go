package mapping

import (
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/models"
)

// ToDomainItem converts a model InventoryItem to a domain Item
func ToDomainItem(m models.InventoryItem) domain.Item {
	return domain.Item{
		ID:        m.ID,
		Name:      m.Name,
		UnitPrice: m.UnitPrice,
		Quantity:  m.Quantity,
	}
}

// ToDomainItemSlice converts a slice of model InventoryItems to domain Items
func ToDomainItemSlice(ms []models.InventoryItem) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}

// ToModelItem converts a domain Item to a model InventoryItem. Timestamps are left to the database.
func ToModelItem(d domain.Item) models.InventoryItem {
	return models.InventoryItem{
		ID:        d.ID,
		Name:      d.Name,
		UnitPrice: d.UnitPrice,
		Quantity:  d.Quantity,
	}
}

// ToDomainItemFromUpdate converts an update command into a domain Item
func ToDomainItemFromUpdate(req dto.UpdateItemRequest) domain.Item {
	return domain.Item{
		ID:        req.ID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}
}

// ToDomainNewItem converts an insert command into a domain NewItem
func ToDomainNewItem(req dto.InsertItemRequest) domain.NewItem {
	return domain.NewItem{
		ID:        req.ID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	}
}

// ToUpdateItemRequest builds the update-item command payload for a domain Item
func ToUpdateItemRequest(d domain.Item) dto.UpdateItemRequest {
	return dto.UpdateItemRequest{
		ID:        d.ID,
		Name:      d.Name,
		UnitPrice: d.UnitPrice,
		Quantity:  d.Quantity,
	}
}

// ToInsertItemRequest builds the insert-item command payload for a domain NewItem
func ToInsertItemRequest(d domain.NewItem) dto.InsertItemRequest {
	return dto.InsertItemRequest{
		ID:        d.ID,
		Name:      d.Name,
		UnitPrice: d.UnitPrice,
		Quantity:  d.Quantity,
	}
}
