package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

// CreateActivity records an activity, consuming the referenced inventory
// atomically.
func (h *Handler) CreateActivity(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	activity, err := h.svc.CreateActivity(c.Request.Context(), CurrentIdentity(c).UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			notFound(c, "Farm not found")
		case errors.Is(err, service.ErrItemUnavailable):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Inventory item missing or insufficient stock",
			})
		default:
			h.serverError(c, "Failed to create activity", err)
		}
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.svc.ListActivities(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		h.serverError(c, "Failed to list activities", err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *Handler) ListFarmActivities(c *gin.Context) {
	activities, err := h.svc.ListFarmActivities(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("farmId"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Farm not found")
			return
		}
		h.serverError(c, "Failed to list farm activities", err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (h *Handler) GetActivity(c *gin.Context) {
	activity, err := h.svc.GetActivity(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Activity not found")
			return
		}
		h.serverError(c, "Failed to fetch activity", err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UpdateActivityStatus changes the status label without touching inventory.
func (h *Handler) UpdateActivityStatus(c *gin.Context) {
	var req models.UpdateActivityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	activity, err := h.svc.UpdateActivityStatus(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Activity not found")
			return
		}
		h.serverError(c, "Failed to update activity status", err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
