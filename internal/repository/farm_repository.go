package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/farmsight/server/internal/models"
)

func (r *PostgresRepository) CreateFarm(ctx context.Context, farm *models.Farm) error {
	query := `
		INSERT INTO farms (id, user_id, name, area, city, crop_type, pesticides, water_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if farm.ID == "" {
		farm.ID = uuid.New().String()
	}
	if farm.Pesticides == nil {
		farm.Pesticides = pq.StringArray{}
	}

	now := time.Now().UTC()
	farm.CreatedAt = now
	farm.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		farm.ID, farm.UserID, farm.Name, farm.Area, farm.City,
		farm.CropType, farm.Pesticides, farm.WaterStatus, farm.CreatedAt, farm.UpdatedAt)

	return err
}

func (r *PostgresRepository) GetFarm(ctx context.Context, userID, farmID string) (*models.Farm, error) {
	query := `SELECT * FROM farms WHERE id = $1 AND user_id = $2`

	var farm models.Farm
	err := r.db.GetContext(ctx, &farm, query, farmID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Farm not found or not owned
		}
		return nil, err
	}

	return &farm, nil
}

func (r *PostgresRepository) GetUserFarms(ctx context.Context, userID string) ([]models.Farm, error) {
	query := `SELECT * FROM farms WHERE user_id = $1 ORDER BY created_at DESC`

	farms := []models.Farm{}
	err := r.db.SelectContext(ctx, &farms, query, userID)
	if err != nil {
		return nil, err
	}

	return farms, nil
}

func (r *PostgresRepository) UpdateFarm(ctx context.Context, farm *models.Farm) error {
	query := `
		UPDATE farms
		SET name = $1, area = $2, city = $3, crop_type = $4, pesticides = $5, water_status = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`

	farm.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		farm.Name, farm.Area, farm.City, farm.CropType, farm.Pesticides,
		farm.WaterStatus, farm.UpdatedAt, farm.ID, farm.UserID)

	return err
}

// DeleteFarm removes the farm. Its activities and item/farm associations go
// with it via ON DELETE CASCADE; inventory items themselves are untouched.
func (r *PostgresRepository) DeleteFarm(ctx context.Context, userID, farmID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM farms WHERE id = $1 AND user_id = $2`, farmID, userID)
	return err
}
