package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

// Register creates an account and returns a token pair.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already registered"})
			return
		}
		h.serverError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login exchanges credentials for a token pair. Unknown email and wrong
// password are not distinguished.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		h.serverError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Refresh(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		h.serverError(c, "Token refresh failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
