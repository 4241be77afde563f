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

// CreateActivity inserts the activity with its consumption lines and applies
// the inventory side effects as a single transaction: each line decrements the
// referenced item's quantity and adds the activity's farm to the item's farm
// set. Any failure rolls the whole operation back, so either everything is
// applied or nothing is.
func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
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

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.Status == "" {
		activity.Status = models.StatusPlanned
	}

	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if activity.Date.IsZero() {
		activity.Date = now
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activities (id, farm_id, user_id, type, description, date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, activity.ID, activity.FarmID, activity.UserID, activity.Type,
		activity.Description, activity.Date, activity.Status, activity.Notes,
		activity.CreatedAt, activity.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range activity.InventoryItems {
		line := &activity.InventoryItems[i]
		line.ActivityID = activity.ID
		line.Position = i

		_, err = tx.ExecContext(ctx, `
			INSERT INTO activity_items (activity_id, item_id, quantity, unit, position)
			VALUES ($1, $2, $3, $4, $5)
		`, line.ActivityID, line.ItemID, line.Quantity, line.Unit, line.Position)
		if err != nil {
			if isForeignKeyViolation(err) {
				err = ErrItemUnavailable
			}
			return err
		}

		// The quantity guard doubles as the existence and ownership check:
		// zero rows affected aborts the transaction.
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET quantity = quantity - $1, updated_at = $2
			WHERE id = $3 AND user_id = $4 AND quantity >= $1
		`, line.Quantity, now, line.ItemID, activity.UserID)
		if err != nil {
			if isCheckViolation(err) {
				err = ErrItemUnavailable
			}
			return err
		}

		var affected int64
		affected, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			err = ErrItemUnavailable
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO inventory_item_farms (item_id, farm_id) VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, line.ItemID, activity.FarmID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetActivity(ctx context.Context, userID, activityID string) (*models.Activity, error) {
	query := `SELECT * FROM activities WHERE id = $1 AND user_id = $2`

	var activity models.Activity
	err := r.db.GetContext(ctx, &activity, query, activityID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Activity not found or not owned
		}
		return nil, err
	}

	if err := r.loadActivityLines(ctx, userID, []*models.Activity{&activity}); err != nil {
		return nil, err
	}

	farm, err := r.GetFarm(ctx, userID, activity.FarmID)
	if err != nil {
		return nil, err
	}
	activity.Farm = farm

	return &activity, nil
}

func (r *PostgresRepository) GetFarmActivities(ctx context.Context, userID, farmID string) ([]models.Activity, error) {
	query := `SELECT * FROM activities WHERE farm_id = $1 AND user_id = $2 ORDER BY date DESC`

	activities := []models.Activity{}
	err := r.db.SelectContext(ctx, &activities, query, farmID, userID)
	if err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, userID, activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *PostgresRepository) GetUserActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	query := `SELECT * FROM activities WHERE user_id = $1 ORDER BY date DESC`

	activities := []models.Activity{}
	err := r.db.SelectContext(ctx, &activities, query, userID)
	if err != nil {
		return nil, err
	}

	if err := r.attachLines(ctx, userID, activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// UpdateActivityStatus changes only the status label. It returns the updated
// activity with resolved lines, or nil when the activity is absent or not
// owned by the user.
func (r *PostgresRepository) UpdateActivityStatus(ctx context.Context, userID, activityID, status string) (*models.Activity, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE activities SET status = $1, updated_at = $2 WHERE id = $3 AND user_id = $4
	`, status, time.Now().UTC(), activityID, userID)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetActivity(ctx, userID, activityID)
}

func (r *PostgresRepository) attachLines(ctx context.Context, userID string, activities []models.Activity) error {
	refs := make([]*models.Activity, len(activities))
	for i := range activities {
		refs[i] = &activities[i]
	}
	return r.loadActivityLines(ctx, userID, refs)
}

// loadActivityLines batch-loads the consumption lines for the given
// activities and resolves each line's inventory item.
func (r *PostgresRepository) loadActivityLines(ctx context.Context, userID string, activities []*models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	ids := make([]string, len(activities))
	byID := make(map[string]*models.Activity, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
		byID[a.ID] = a
		a.InventoryItems = []models.ActivityLine{}
	}

	lines := []models.ActivityLine{}
	err := r.db.SelectContext(ctx, &lines, `
		SELECT activity_id, item_id, quantity, unit, position
		FROM activity_items
		WHERE activity_id = ANY($1)
		ORDER BY activity_id, position
	`, pq.Array(ids))
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}

	itemIDs := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			itemIDs = append(itemIDs, line.ItemID)
		}
	}

	items := []models.InventoryItem{}
	err = r.db.SelectContext(ctx, &items, inventorySelect+`
		WHERE i.id = ANY($1) AND i.user_id = $2
		GROUP BY i.id
	`, pq.Array(itemIDs), userID)
	if err != nil {
		return err
	}

	itemByID := make(map[string]*models.InventoryItem, len(items))
	for i := range items {
		itemByID[items[i].ID] = &items[i]
	}

	for _, line := range lines {
		line.Item = itemByID[line.ItemID]
		if a, ok := byID[line.ActivityID]; ok {
			a.InventoryItems = append(a.InventoryItems, line)
		}
	}

	return nil
}
