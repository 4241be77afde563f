package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

func (h *Handler) CreateFarm(c *gin.Context) {
	var req models.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	farm, err := h.svc.CreateFarm(c.Request.Context(), CurrentIdentity(c).UserID, req)
	if err != nil {
		h.serverError(c, "Failed to create farm", err)
		return
	}

	c.JSON(http.StatusCreated, farm)
}

func (h *Handler) ListFarms(c *gin.Context) {
	farms, err := h.svc.ListFarms(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		h.serverError(c, "Failed to list farms", err)
		return
	}

	c.JSON(http.StatusOK, farms)
}

func (h *Handler) GetFarm(c *gin.Context) {
	farm, err := h.svc.GetFarm(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Farm not found")
			return
		}
		h.serverError(c, "Failed to fetch farm", err)
		return
	}

	c.JSON(http.StatusOK, farm)
}

func (h *Handler) UpdateFarm(c *gin.Context) {
	var req models.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	farm, err := h.svc.UpdateFarm(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Farm not found")
			return
		}
		h.serverError(c, "Failed to update farm", err)
		return
	}

	c.JSON(http.StatusOK, farm)
}

func (h *Handler) DeleteFarm(c *gin.Context) {
	err := h.svc.DeleteFarm(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Farm not found")
			return
		}
		h.serverError(c, "Failed to delete farm", err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Farm deleted"})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msg})
}
