package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/service"
)

// Chat forwards the user's question to the assistant with their farm context.
func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), CurrentIdentity(c).UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrAssistantUnavailable) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to get chatbot response",
				Details: "assistant is not configured",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to get chatbot response",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChatHistory returns the caller's recent exchanges, newest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	messages, err := h.svc.ChatHistory(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		h.serverError(c, "Failed to fetch chat history", err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
