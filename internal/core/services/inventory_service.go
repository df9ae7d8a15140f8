package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// inventoryServiceImpl serves the command bridge on top of the item store.
type inventoryServiceImpl struct {
	BaseService
	repo portsrepo.InventoryRepositoryWithLookup
}

// NewInventoryService creates the command bridge service.
func NewInventoryService(repo portsrepo.InventoryRepositoryWithLookup) portssvc.InventorySvcFacade {
	return &inventoryServiceImpl{repo: repo}
}

var _ portssvc.InventorySvcFacade = (*inventoryServiceImpl)(nil)

func (s *inventoryServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items")
		return nil, err
	}
	if items == nil {
		return []domain.Item{}, nil
	}
	return items, nil
}

func (s *inventoryServiceImpl) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find inventory item", slog.Int64("item_id", id))
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryServiceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateItemFields(req.ID, req.Name, req.UnitPrice); err != nil {
		return err
	}
	if req.Quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative")
	}

	if err := s.repo.UpdateItem(ctx, mapping.ToDomainItemFromUpdate(req)); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update inventory item", slog.Int64("item_id", req.ID))
		}
		return err
	}

	s.LogInfo(ctx, "Inventory item updated", slog.Int64("item_id", req.ID))
	return nil
}

func (s *inventoryServiceImpl) InsertItem(ctx context.Context, req dto.InsertItemRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateItemFields(req.ID, req.Name, req.UnitPrice); err != nil {
		return err
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative")
	}

	if err := s.repo.InsertItem(ctx, mapping.ToDomainNewItem(req)); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to insert inventory item", slog.Int64("item_id", req.ID))
		}
		return err
	}

	s.LogInfo(ctx, "Inventory item inserted", slog.Int64("item_id", req.ID))
	return nil
}

func validateItemFields(id int64, name string, price decimal.Decimal) error {
	if id <= 0 {
		return apperrors.NewValidationError("id must be a positive integer")
	}
	if name == "" {
		return apperrors.NewValidationError("name must not be empty")
	}
	if price.IsNegative() {
		return apperrors.NewValidationError("unit price must not be negative")
	}
	return nil
}
