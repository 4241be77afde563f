package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req models.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	supplier, err := h.svc.CreateSupplier(c.Request.Context(), CurrentIdentity(c).UserID, req)
	if err != nil {
		h.serverError(c, "Failed to create supplier", err)
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func (h *Handler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		h.serverError(c, "Failed to list suppliers", err)
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) GetSupplier(c *gin.Context) {
	supplier, err := h.svc.GetSupplier(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Supplier not found")
			return
		}
		h.serverError(c, "Failed to fetch supplier", err)
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	var req models.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	supplier, err := h.svc.UpdateSupplier(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Supplier not found")
			return
		}
		h.serverError(c, "Failed to update supplier", err)
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) DeleteSupplier(c *gin.Context) {
	err := h.svc.DeleteSupplier(c.Request.Context(), CurrentIdentity(c).UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Supplier not found")
			return
		}
		h.serverError(c, "Failed to delete supplier", err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Supplier deleted"})
}
