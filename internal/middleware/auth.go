package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/auth"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// ContextUsernameKey stores the authenticated username inside the gin context
const ContextUsernameKey = "username"

// AuthRequired ensures the request carries a valid Bearer token
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Authorization header missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.UnauthorizedResponse(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
