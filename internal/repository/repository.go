package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/farmsight/server/internal/models"
)

// Sentinel errors surfaced by repository implementations. Services translate
// these into API-level failures.
var (
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, such as the (user, name) index on inventory items.
	ErrDuplicate = errors.New("duplicate record")

	// ErrItemUnavailable is returned by CreateActivity when a consumption
	// line references an item that does not exist, is not owned by the
	// activity's user, or has insufficient quantity. The whole transaction
	// is rolled back.
	ErrItemUnavailable = errors.New("inventory item missing or insufficient stock")

	// ErrReferenced is returned when a delete is blocked by rows that
	// reference the target, such as activity lines consuming an item.
	ErrReferenced = errors.New("record is referenced by other records")

	// ErrFarmUnavailable is returned when an item/farm association names a
	// farm that does not exist.
	ErrFarmUnavailable = errors.New("farm does not exist")
)

// Repository defines the persistence operations used by the service layer.
// All read/update/delete operations are owner-scoped: a missing row and a row
// owned by someone else are indistinguishable (nil result, no error).
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Farm operations
	CreateFarm(ctx context.Context, farm *models.Farm) error
	GetFarm(ctx context.Context, userID, farmID string) (*models.Farm, error)
	GetUserFarms(ctx context.Context, userID string) ([]models.Farm, error)
	UpdateFarm(ctx context.Context, farm *models.Farm) error
	DeleteFarm(ctx context.Context, userID, farmID string) error

	// Inventory operations
	CreateInventoryItem(ctx context.Context, item *models.InventoryItem, farmIDs []string) error
	GetInventoryItem(ctx context.Context, userID, itemID string) (*models.InventoryItem, error)
	GetUserInventory(ctx context.Context, userID string) ([]models.InventoryItem, error)
	GetFarmInventory(ctx context.Context, userID, farmID string) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item *models.InventoryItem, farmIDs []string) error
	DeleteInventoryItem(ctx context.Context, userID, itemID string) error

	// Supplier operations
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	GetSupplier(ctx context.Context, userID, supplierID string) (*models.Supplier, error)
	GetUserSuppliers(ctx context.Context, userID string) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *models.Supplier) error
	DeleteSupplier(ctx context.Context, userID, supplierID string) error

	// Activity operations
	CreateActivity(ctx context.Context, activity *models.Activity) error
	GetActivity(ctx context.Context, userID, activityID string) (*models.Activity, error)
	GetFarmActivities(ctx context.Context, userID, farmID string) ([]models.Activity, error)
	GetUserActivities(ctx context.Context, userID string) ([]models.Activity, error)
	UpdateActivityStatus(ctx context.Context, userID, activityID, status string) (*models.Activity, error)

	// Chat operations
	CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error
	GetRecentChatMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error)
}

// PostgresRepository implements the Repository interface using PostgreSQL.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection.
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// isCheckViolation covers the non-negative quantity constraint.
func isCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23514"
}
