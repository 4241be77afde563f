package models

// Request models
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type CreateFarmRequest struct {
	Name        string       `json:"name" binding:"required"`
	Area        string       `json:"area" binding:"required"`
	City        string       `json:"city" binding:"required"`
	CropType    string       `json:"cropType"`
	Pesticides  []string     `json:"pesticides"`
	WaterStatus *WaterStatus `json:"waterStatus"`
}

// UpdateFarmRequest replaces only the supplied fields.
type UpdateFarmRequest struct {
	Name        *string      `json:"name"`
	Area        *string      `json:"area"`
	City        *string      `json:"city"`
	CropType    *string      `json:"cropType"`
	Pesticides  *[]string    `json:"pesticides"`
	WaterStatus *WaterStatus `json:"waterStatus"`
}

type CreateInventoryItemRequest struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category" binding:"required,oneof=Seeds Fertilizers Pesticides Equipment Tools Other"`
	Quantity          *float64 `json:"quantity" binding:"required,gte=0"`
	Unit              string   `json:"unit" binding:"required,oneof=kg g l ml piece box pack"`
	Price             *float64 `json:"price" binding:"required,gte=0"`
	Supplier          string   `json:"supplier" binding:"required"`
	StockLevel        float64  `json:"stockLevel" binding:"gte=0"`
	MinimumStockLevel float64  `json:"minimumStockLevel" binding:"gte=0"`
	Farms             []string `json:"farms"`
}

type UpdateInventoryItemRequest struct {
	Name              *string   `json:"name"`
	Description       *string   `json:"description"`
	Category          *string   `json:"category" binding:"omitempty,oneof=Seeds Fertilizers Pesticides Equipment Tools Other"`
	Quantity          *float64  `json:"quantity" binding:"omitempty,gte=0"`
	Unit              *string   `json:"unit" binding:"omitempty,oneof=kg g l ml piece box pack"`
	Price             *float64  `json:"price" binding:"omitempty,gte=0"`
	Supplier          *string   `json:"supplier"`
	StockLevel        *float64  `json:"stockLevel" binding:"omitempty,gte=0"`
	MinimumStockLevel *float64  `json:"minimumStockLevel" binding:"omitempty,gte=0"`
	Farms             *[]string `json:"farms"`
}

type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

type ActivityLineRequest struct {
	Item     string  `json:"item" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

type CreateActivityRequest struct {
	Farm           string                `json:"farm" binding:"required"`
	Type           string                `json:"type" binding:"required,activitytype"`
	Description    string                `json:"description" binding:"required"`
	Date           string                `json:"date"`
	InventoryItems []ActivityLineRequest `json:"inventoryItems" binding:"omitempty,dive"`
	Notes          string                `json:"notes"`
}

type UpdateActivityStatusRequest struct {
	Status string `json:"status" binding:"required,activitystatus"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Response models
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User         *UserInfo `json:"user,omitempty"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresIn    int       `json:"expiresIn"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Details is populated only by the
// chatbot and pest-detection endpoints, which surface the proximate upstream
// failure message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
