package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/service"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// CreateBatchRequest represents the request for batch creation
type CreateBatchRequest struct {
	Name string `json:"name"` // Empty means a name is synthesized from the creation time
}

// BatchHandler handles batch-related HTTP requests
type BatchHandler struct {
	batchService  service.BatchService
	exportService service.ExportService
	logger        *logger.Logger
}

// NewBatchHandler creates a new BatchHandler instance
func NewBatchHandler(batchService service.BatchService, exportService service.ExportService, logger *logger.Logger) *BatchHandler {
	return &BatchHandler{
		batchService:  batchService,
		exportService: exportService,
		logger:        logger,
	}
}

// CreateBatch creates a new batch
// @Summary Create a batch
// @Description Create a batch. An empty name is replaced by one derived from the creation timestamp.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body CreateBatchRequest true "Batch name (optional)"
// @Success 201 {object} utils.APIResponse{data=response.BatchResponse} "Created batch"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/folders [post]
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	batch, err := h.batchService.CreateBatch(req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create batch")
		respondError(c, err, "Failed to create batch")
		return
	}

	utils.CreatedResponse(c, "Batch created successfully", batch)
}

// ListBatches returns all batches with their record counts
// @Summary List batches
// @Description List all batches newest-first, each with its record count
// @Tags folders
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.BatchResponse} "Batches"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/folders [get]
func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.batchService.ListBatches()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list batches")
		respondError(c, err, "Failed to list batches")
		return
	}

	utils.SuccessResponse(c, "Batches retrieved successfully", batches)
}

// DeleteBatch removes a batch, its records and their stored files
// @Summary Delete a batch
// @Description Delete a batch together with all of its records and their stored report files
// @Tags folders
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} utils.APIResponse "Deletion result"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/folders/{id} [delete]
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	batchID := c.Param("id")

	if err := h.batchService.DeleteBatch(batchID); err != nil {
		h.logger.WithError(err).WithField("batch_id", batchID).Error("Failed to delete batch")
		respondError(c, err, "Failed to delete batch")
		return
	}

	utils.SuccessResponse(c, "Batch deleted successfully", nil)
}

// ExportBatch streams the batch's records as an xlsx workbook
// @Summary Export batch records
// @Description Render all records of a batch to an xlsx workbook and stream it as a download
// @Tags folders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Batch ID"
// @Success 200 {file} binary "Workbook"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/folders/{id}/export [get]
func (h *BatchHandler) ExportBatch(c *gin.Context) {
	batchID := c.Param("id")

	data, filename, err := h.exportService.ExportBatchRecords(batchID)
	if err != nil {
		h.logger.WithError(err).WithField("batch_id", batchID).Error("Failed to export batch")
		respondError(c, err, "Failed to export batch")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
