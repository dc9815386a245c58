package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// UploadHandler serves stored report files
type UploadHandler struct {
	store  *storage.Store
	logger *logger.Logger
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(store *storage.Store, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// ServeFile streams one stored report file
// @Summary Download a report file
// @Description Stream a stored report file by its storage name
// @Tags uploads
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary "File contents"
// @Failure 404 {object} utils.APIResponse "File not found"
// @Router /uploads/{filename} [get]
func (h *UploadHandler) ServeFile(c *gin.Context) {
	name := c.Param("filename")

	path, ok := h.store.Path(name)
	if !ok {
		h.logger.WithField("file", name).Warn("Rejected file request")
		utils.NotFoundResponse(c, "File not found")
		return
	}

	c.File(path)
}
