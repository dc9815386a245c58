package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/pkg/logger"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// ErrorHandler recovers from panics and converts them into 500 responses
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// NoRouteHandler returns a JSON 404 for unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	}
}

// NoMethodHandler returns a JSON 405 for known paths with wrong methods
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
		})
	}
}
