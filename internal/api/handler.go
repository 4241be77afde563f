package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/pestdetect"
	"github.com/farmsight/server/internal/service"
)

// Handler wires HTTP routes to the service layer.
type Handler struct {
	svc      service.Service
	detector pestdetect.Detector
	logger   *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(svc service.Service, detector pestdetect.Detector, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		detector: detector,
		logger:   logger,
	}
}

// SetupRoutes registers all API routes on the router.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	api := router.Group("/api")
	{
		api.GET("/market/ai-crop-data", h.GetMarketData)
		api.POST("/ai/detect-pests", h.DetectPests)
	}

	protected := router.Group("/api")
	protected.Use(h.Authenticated())
	{
		protected.POST("/farms", h.CreateFarm)
		protected.GET("/farms", h.ListFarms)
		protected.GET("/farms/:id", h.GetFarm)
		protected.PUT("/farms/:id", h.UpdateFarm)
		protected.DELETE("/farms/:id", h.DeleteFarm)

		protected.POST("/inventory", h.CreateInventoryItem)
		protected.GET("/inventory", h.ListInventory)
		protected.GET("/inventory/farm/:farmId", h.ListFarmInventory)
		protected.GET("/inventory/:id", h.GetInventoryItem)
		protected.PUT("/inventory/:id", h.UpdateInventoryItem)
		protected.DELETE("/inventory/:id", h.DeleteInventoryItem)

		protected.POST("/suppliers", h.CreateSupplier)
		protected.GET("/suppliers", h.ListSuppliers)
		protected.GET("/suppliers/:id", h.GetSupplier)
		protected.PUT("/suppliers/:id", h.UpdateSupplier)
		protected.DELETE("/suppliers/:id", h.DeleteSupplier)

		protected.POST("/activities", h.CreateActivity)
		protected.GET("/activities", h.ListActivities)
		protected.GET("/activities/farm/:farmId", h.ListFarmActivities)
		protected.GET("/activities/:id", h.GetActivity)
		protected.PATCH("/activities/:id/status", h.UpdateActivityStatus)

		protected.POST("/chatbot/chat", h.Chat)
		protected.GET("/chatbot/history", h.ChatHistory)
	}
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msg})
}
