package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_inventory_app/internal/models"
	"github.com/SscSPs/pos_inventory_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory items.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryWithLookup {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InventoryRepositoryWithLookup = (*PgxInventoryRepository)(nil)

const selectItemColumns = `SELECT id, name, unit_price, quantity, created_at, updated_at FROM inventory_items`

func scanItem(row pgx.Row) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.UnitPrice,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

// ListItems retrieves every item ordered by id.
func (r *PgxInventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.Pool.Query(ctx, selectItemColumns+` ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InventoryItem, error) {
		return scanItem(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Item{}, nil
		}
		return nil, fmt.Errorf("failed to scan inventory items: %w", err)
	}

	return mapping.ToDomainItemSlice(modelItems), nil
}

// FindItemByID retrieves one item.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	modelItem, err := scanItem(r.Pool.QueryRow(ctx, selectItemColumns+` WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: item %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find item %d: %w", id, err)
	}

	item := mapping.ToDomainItem(modelItem)
	return &item, nil
}

// UpdateItem overwrites name, unit price and quantity of an existing item.
func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		UPDATE inventory_items
		SET name = $2, unit_price = $3, quantity = $4, updated_at = NOW()
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, modelItem.ID, modelItem.Name, modelItem.UnitPrice, modelItem.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: an item named %q already exists", apperrors.ErrDuplicate, modelItem.Name)
		}
		return fmt.Errorf("failed to update item %d: %w", modelItem.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: item %d", apperrors.ErrNotFound, modelItem.ID)
	}
	return nil
}

// InsertItem creates an item. A nil quantity lets the column default apply.
func (r *PgxInventoryRepository) InsertItem(ctx context.Context, item domain.NewItem) error {
	var err error
	if item.Quantity == nil {
		_, err = r.Pool.Exec(ctx, `
			INSERT INTO inventory_items (id, name, unit_price)
			VALUES ($1, $2, $3);
		`, item.ID, item.Name, item.UnitPrice)
	} else {
		_, err = r.Pool.Exec(ctx, `
			INSERT INTO inventory_items (id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4);
		`, item.ID, item.Name, item.UnitPrice, *item.Quantity)
	}

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item %d or name %q already exists", apperrors.ErrDuplicate, item.ID, item.Name)
		}
		return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
