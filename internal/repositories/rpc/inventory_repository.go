package rpc

import (
	"context"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/utils/mapping"
)

// InventoryRepository reads and writes items through the command bridge.
// It does not retry, cache or validate; the bridge is the authority.
type InventoryRepository struct {
	channel Channel
}

// NewInventoryRepository creates a repository over channel.
func NewInventoryRepository(channel Channel) *InventoryRepository {
	return &InventoryRepository{channel: channel}
}

var _ portsrepo.InventoryRepositoryFacade = (*InventoryRepository)(nil)

// ListItems fetches the full item collection.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []dto.ItemResponse
	if err := r.channel.Invoke(ctx, dto.CommandListItems, nil, &items); err != nil {
		return nil, err
	}
	return dto.ToDomainItems(items), nil
}

// UpdateItem sends every editable field of item.
func (r *InventoryRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	return r.channel.Invoke(ctx, dto.CommandUpdateItem, mapping.ToUpdateItemRequest(item), nil)
}

// InsertItem creates item. A nil quantity is left out of the payload.
func (r *InventoryRepository) InsertItem(ctx context.Context, item domain.NewItem) error {
	return r.channel.Invoke(ctx, dto.CommandInsertItem, mapping.ToInsertItemRequest(item), nil)
}
