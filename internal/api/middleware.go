package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farmsight/server/internal/models"
)

const identityKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID string
	Email  string
}

// Authenticated returns a middleware that validates the bearer token and
// attaches the caller's identity. Missing, malformed, and invalid tokens all
// produce the same response.
func (h *Handler) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		user, err := h.svc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(identityKey, Identity{UserID: user.ID, Email: user.Email})
		c.Next()
	}
}

// CurrentIdentity returns the identity set by the Authenticated middleware.
func CurrentIdentity(c *gin.Context) Identity {
	return c.MustGet(identityKey).(Identity)
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
	c.Abort()
}
