package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Inventory item categories
const (
	CategorySeeds       = "Seeds"
	CategoryFertilizers = "Fertilizers"
	CategoryPesticides  = "Pesticides"
	CategoryEquipment   = "Equipment"
	CategoryTools       = "Tools"
	CategoryOther       = "Other"
)

// Activity types
const (
	ActivityPlanting    = "Planting"
	ActivityFertilizing = "Fertilizing"
	ActivityPestControl = "Pest Control"
	ActivityIrrigation  = "Irrigation"
	ActivityHarvesting  = "Harvesting"
	ActivityMaintenance = "Maintenance"
	ActivityOther       = "Other"
)

// Activity statuses
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Farm water statuses
const (
	WaterStatusWatered    = "Watered"
	WaterStatusNeedsWater = "Needs Water"
	WaterStatusDry        = "Dry"
)

// ValidActivityType reports whether t is one of the recognized activity types.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityPlanting, ActivityFertilizing, ActivityPestControl,
		ActivityIrrigation, ActivityHarvesting, ActivityMaintenance, ActivityOther:
		return true
	}
	return false
}

// ValidActivityStatus reports whether s is one of the recognized activity statuses.
func ValidActivityStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// User represents a registered account. The password field holds the bcrypt
// hash and is never serialized.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// WaterStatus is the structured watering state of a farm, stored as a JSONB
// column.
type WaterStatus struct {
	LastWatered time.Time `json:"lastWatered"`
	Status      string    `json:"status"`
}

// Value implements driver.Valuer so the struct can be written to a JSONB column.
func (w WaterStatus) Value() (driver.Value, error) {
	return json.Marshal(w)
}

// Scan implements sql.Scanner for reading the JSONB column back.
func (w *WaterStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	}
	return errors.New("unsupported source type for WaterStatus")
}

// Farm represents a farm owned by a user.
type Farm struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"userId"`
	Name        string         `db:"name" json:"name"`
	Area        string         `db:"area" json:"area"`
	City        string         `db:"city" json:"city"`
	CropType    string         `db:"crop_type" json:"cropType,omitempty"`
	Pesticides  pq.StringArray `db:"pesticides" json:"pesticides"`
	WaterStatus *WaterStatus   `db:"water_status" json:"waterStatus,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// InventoryItem represents a stocked input (seeds, fertilizer, ...) owned by a
// user. Farms holds the ids of farms the item is associated with, aggregated
// from the item/farm join table. The (user, name) pair is unique.
type InventoryItem struct {
	ID                string         `db:"id" json:"id"`
	UserID            string         `db:"user_id" json:"userId"`
	Name              string         `db:"name" json:"name"`
	Description       string         `db:"description" json:"description,omitempty"`
	Category          string         `db:"category" json:"category"`
	Quantity          float64        `db:"quantity" json:"quantity"`
	Unit              string         `db:"unit" json:"unit"`
	Price             float64        `db:"price" json:"price"`
	Supplier          string         `db:"supplier" json:"supplier"`
	StockLevel        float64        `db:"stock_level" json:"stockLevel"`
	MinimumStockLevel float64        `db:"minimum_stock_level" json:"minimumStockLevel"`
	LastRestocked     time.Time      `db:"last_restocked" json:"lastRestocked"`
	Farms             pq.StringArray `db:"farms" json:"farms"`
	CreatedAt         time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
}

// Supplier represents a supplier contact owned by a user.
type Supplier struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Contact   string    `db:"contact" json:"contact,omitempty"`
	Email     string    `db:"email" json:"email,omitempty"`
	Address   string    `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ActivityLine is one inventory consumption line of an activity. Item is
// populated when the line is resolved for read endpoints.
type ActivityLine struct {
	ActivityID string         `db:"activity_id" json:"-"`
	ItemID     string         `db:"item_id" json:"itemId"`
	Quantity   float64        `db:"quantity" json:"quantity"`
	Unit       string         `db:"unit" json:"unit"`
	Position   int            `db:"position" json:"-"`
	Item       *InventoryItem `db:"-" json:"item,omitempty"`
}

// Activity is a logged farm action, optionally consuming inventory.
type Activity struct {
	ID             string         `db:"id" json:"id"`
	FarmID         string         `db:"farm_id" json:"farmId"`
	UserID         string         `db:"user_id" json:"userId"`
	Type           string         `db:"type" json:"type"`
	Description    string         `db:"description" json:"description"`
	Date           time.Time      `db:"date" json:"date"`
	Status         string         `db:"status" json:"status"`
	Notes          string         `db:"notes" json:"notes,omitempty"`
	InventoryItems []ActivityLine `db:"-" json:"inventoryItems"`
	Farm           *Farm          `db:"-" json:"farm,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// ChatMessage stores one chatbot exchange for a user.
type ChatMessage struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Message   string    `db:"message" json:"message"`
	Response  string    `db:"response" json:"response"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
