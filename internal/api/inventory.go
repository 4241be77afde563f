package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.svc.CreateInventoryItem(c.Request.Context(), CurrentIdentity(c).UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateItem):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Item with this name already exists"})
		case errors.Is(err, service.ErrUnknownFarm):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown farm in farms list"})
		default:
			h.serverError(c, "Failed to create inventory item", err)
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.svc.ListInventory(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		h.serverError(c, "Failed to list inventory", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListFarmInventory returns the caller's in-stock items linked to the farm.
func (h *Handler) ListFarmInventory(c *gin.Context) {
	items, err := h.svc.ListFarmInventory(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("farmId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Farm not found")
			return
		}
		h.serverError(c, "Failed to list farm inventory", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetInventoryItem(c *gin.Context) {
	item, err := h.svc.GetInventoryItem(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Inventory item not found")
			return
		}
		h.serverError(c, "Failed to fetch inventory item", err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.svc.UpdateInventoryItem(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			notFound(c, "Inventory item not found")
		case errors.Is(err, service.ErrDuplicateItem):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Item with this name already exists"})
		case errors.Is(err, service.ErrUnknownFarm):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unknown farm in farms list"})
		default:
			h.serverError(c, "Failed to update inventory item", err)
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	err := h.svc.DeleteInventoryItem(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			notFound(c, "Inventory item not found")
		case errors.Is(err, service.ErrItemInUse):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Item is referenced by activities"})
		default:
			h.serverError(c, "Failed to delete inventory item", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Inventory item deleted"})
}
