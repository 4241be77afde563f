package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/market"
	"github.com/farmsight/server/internal/models"
)

// GetMarketData returns the curated crop market snapshot for a region.
func (h *Handler) GetMarketData(c *gin.Context) {
	c.JSON(http.StatusOK, market.ForRegion(c.Query("region")))
}

// DetectPests proxies an uploaded crop image to the detection model.
func (h *Handler) DetectPests(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No image uploaded"})
		return
	}
	defer file.Close()

	predictions, err := h.detector.Detect(c.Request.Context(), header.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Pest detection failed",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}
