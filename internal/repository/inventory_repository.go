package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/farmsight/server/internal/models"
)

// inventorySelect aggregates the item/farm join table into a farms array so
// each item row carries its full farm set.
const inventorySelect = `
	SELECT i.id, i.user_id, i.name, i.description, i.category, i.quantity, i.unit,
	       i.price, i.supplier, i.stock_level, i.minimum_stock_level, i.last_restocked,
	       i.created_at, i.updated_at,
	       COALESCE(array_agg(l.farm_id) FILTER (WHERE l.farm_id IS NOT NULL), '{}') AS farms
	FROM inventory_items i
	LEFT JOIN inventory_item_farms l ON l.item_id = i.id
`

func (r *PostgresRepository) CreateInventoryItem(ctx context.Context, item *models.InventoryItem, farmIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.LastRestocked.IsZero() {
		item.LastRestocked = now
	}

	query := `
		INSERT INTO inventory_items (id, user_id, name, description, category, quantity, unit,
			price, supplier, stock_level, minimum_stock_level, last_restocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.ExecContext(ctx, query,
		item.ID, item.UserID, item.Name, item.Description, item.Category,
		item.Quantity, item.Unit, item.Price, item.Supplier,
		item.StockLevel, item.MinimumStockLevel, item.LastRestocked,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = ErrDuplicate
		}
		return err
	}

	err = r.replaceItemFarmsTx(ctx, tx, item.ID, farmIDs, false)
	if err != nil {
		return err
	}
	item.Farms = farmIDs

	return tx.Commit()
}

func (r *PostgresRepository) GetInventoryItem(ctx context.Context, userID, itemID string) (*models.InventoryItem, error) {
	query := inventorySelect + ` WHERE i.id = $1 AND i.user_id = $2 GROUP BY i.id`

	var item models.InventoryItem
	err := r.db.GetContext(ctx, &item, query, itemID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Item not found or not owned
		}
		return nil, err
	}

	return &item, nil
}

func (r *PostgresRepository) GetUserInventory(ctx context.Context, userID string) ([]models.InventoryItem, error) {
	query := inventorySelect + ` WHERE i.user_id = $1 GROUP BY i.id ORDER BY i.name`

	items := []models.InventoryItem{}
	err := r.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetFarmInventory returns the user's items associated with the farm that
// still have stock available.
func (r *PostgresRepository) GetFarmInventory(ctx context.Context, userID, farmID string) ([]models.InventoryItem, error) {
	query := inventorySelect + `
		WHERE i.user_id = $1
		  AND i.stock_level > 0
		  AND i.id IN (SELECT item_id FROM inventory_item_farms WHERE farm_id = $2)
		GROUP BY i.id
		ORDER BY i.name
	`

	items := []models.InventoryItem{}
	err := r.db.SelectContext(ctx, &items, query, userID, farmID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *PostgresRepository) UpdateInventoryItem(ctx context.Context, item *models.InventoryItem, farmIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	item.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE inventory_items
		SET name = $1, description = $2, category = $3, quantity = $4, unit = $5,
			price = $6, supplier = $7, stock_level = $8, minimum_stock_level = $9,
			last_restocked = $10, updated_at = $11
		WHERE id = $12 AND user_id = $13
	`

	_, err = tx.ExecContext(ctx, query,
		item.Name, item.Description, item.Category, item.Quantity, item.Unit,
		item.Price, item.Supplier, item.StockLevel, item.MinimumStockLevel,
		item.LastRestocked, item.UpdatedAt, item.ID, item.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			err = ErrDuplicate
		}
		return err
	}

	err = r.replaceItemFarmsTx(ctx, tx, item.ID, farmIDs, true)
	if err != nil {
		return err
	}
	item.Farms = farmIDs

	return tx.Commit()
}

// DeleteInventoryItem removes the item. Items already consumed by an
// activity are kept, so the activity log stays resolvable.
func (r *PostgresRepository) DeleteInventoryItem(ctx context.Context, userID, itemID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM inventory_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if isForeignKeyViolation(err) {
		return ErrReferenced
	}
	return err
}

// replaceItemFarmsTx rewrites the item's farm associations inside tx. When
// clear is false the item is new and has no rows to remove.
func (r *PostgresRepository) replaceItemFarmsTx(ctx context.Context, tx *sqlx.Tx, itemID string, farmIDs []string, clear bool) error {
	if clear {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM inventory_item_farms WHERE item_id = $1`, itemID); err != nil {
			return err
		}
	}

	for _, farmID := range farmIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_item_farms (item_id, farm_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			itemID, farmID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrFarmUnavailable
			}
			return err
		}
	}
	return nil
}
