package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/farmsight/server/internal/models"
)

func (r *PostgresRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, name, contact, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		supplier.ID, supplier.UserID, supplier.Name, supplier.Contact,
		supplier.Email, supplier.Address, supplier.CreatedAt, supplier.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetSupplier(ctx context.Context, userID, supplierID string) (*models.Supplier, error) {
	query := `SELECT * FROM suppliers WHERE id = $1 AND user_id = $2`

	var supplier models.Supplier
	err := r.db.GetContext(ctx, &supplier, query, supplierID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Supplier not found or not owned
		}
		return nil, err
	}

	return &supplier, nil
}

func (r *PostgresRepository) GetUserSuppliers(ctx context.Context, userID string) ([]models.Supplier, error) {
	query := `SELECT * FROM suppliers WHERE user_id = $1 ORDER BY name`

	suppliers := []models.Supplier{}
	err := r.db.SelectContext(ctx, &suppliers, query, userID)
	if err != nil {
		return nil, err
	}

	return suppliers, nil
}

func (r *PostgresRepository) UpdateSupplier(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact = $2, email = $3, address = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`

	supplier.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		supplier.Name, supplier.Contact, supplier.Email, supplier.Address,
		supplier.UpdatedAt, supplier.ID, supplier.UserID)

	return err
}

func (r *PostgresRepository) DeleteSupplier(ctx context.Context, userID, supplierID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM suppliers WHERE id = $1 AND user_id = $2`, supplierID, userID)
	return err
}
