package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/apperr"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// respondError maps a service error to the matching HTTP response
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		utils.NotFoundResponse(c, message)
	case errors.Is(err, apperr.ErrConflict):
		utils.ConflictResponse(c, message, err)
	default:
		utils.InternalServerErrorResponse(c, message, err)
	}
}
