package handler

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cnsllgllr/qrmaster/internal/service"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

// BulkCreateRequest represents the request for bulk record creation
type BulkCreateRequest struct {
	Records []service.RecordInput `json:"records" binding:"required,min=1,dive"`
}

// BulkDeleteRequest represents the request for bulk record deletion
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// RecordHandler handles record-related HTTP requests
type RecordHandler struct {
	recordService service.RecordService
	maxUploadSize int64
	logger        *logger.Logger
}

// NewRecordHandler creates a new RecordHandler instance
func NewRecordHandler(recordService service.RecordService, maxUploadSize int64, logger *logger.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// BulkCreate persists a set of records in one request
// @Summary Create records in bulk
// @Description Persist a set of records with caller-supplied ids and timestamps. Report fields start empty.
// @Tags qrs
// @Accept json
// @Produce json
// @Param request body BulkCreateRequest true "Records to create"
// @Success 201 {object} utils.APIResponse "Created count"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 409 {object} utils.APIResponse "Duplicate record id"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs/batch [post]
func (h *RecordHandler) BulkCreate(c *gin.Context) {
	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	count, err := h.recordService.BulkCreate(req.Records)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create records")
		respondError(c, err, "Failed to create records")
		return
	}

	utils.CreatedResponse(c, "Records created successfully", gin.H{"created": count})
}

// ListRecords returns records, optionally filtered by batch
// @Summary List records
// @Description List records newest-first. Pass batchId to restrict the result to one batch.
// @Tags qrs
// @Produce json
// @Param batchId query string false "Batch ID filter"
// @Success 200 {object} utils.APIResponse{data=[]response.RecordResponse} "Records"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	batchID := c.Query("batchId")

	records, err := h.recordService.ListRecords(batchID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list records")
		respondError(c, err, "Failed to list records")
		return
	}

	utils.SuccessResponse(c, "Records retrieved successfully", records)
}

// GetRecord returns a single record
// @Summary Get a record
// @Description Get one record by id, including its report fields and download URL
// @Tags qrs
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse{data=response.RecordResponse} "Record"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")

	record, err := h.recordService.GetRecord(id)
	if err != nil {
		h.logger.WithError(err).WithField("record_id", id).Error("Failed to get record")
		respondError(c, err, "Record not found")
		return
	}

	utils.SuccessResponse(c, "Record retrieved successfully", record)
}

// UpdateReport updates a record's report via a multipart form
// @Summary Update a record's report
// @Description Update report fields from a multipart form. Send "file" to attach or replace the report file, "reportTitle" and "reportNote" to set text fields, and "removeFile=true" to clear the whole report. The remove flag wins over everything else in the same request.
// @Tags qrs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Record ID"
// @Param file formData file false "Report file"
// @Param reportTitle formData string false "Report title"
// @Param reportNote formData string false "Report note"
// @Param removeFile formData string false "Set to true to clear the report"
// @Success 200 {object} utils.APIResponse{data=response.RecordResponse} "Updated record"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs/{id} [put]
func (h *RecordHandler) UpdateReport(c *gin.Context) {
	id := c.Param("id")

	if c.Request.ContentLength > h.maxUploadSize {
		utils.BadRequestResponse(c, "Request too large", fmt.Errorf("request exceeds %d bytes", h.maxUploadSize))
		return
	}

	in := service.UpdateReportInput{}

	if title, ok := c.GetPostForm("reportTitle"); ok {
		in.Title = &title
	}
	if note, ok := c.GetPostForm("reportNote"); ok {
		in.Note = &note
	}
	in.RemoveFile = strings.EqualFold(c.PostForm("removeFile"), "true")

	var file multipart.File
	header, err := c.FormFile("file")
	if err == nil && header != nil {
		if header.Size > h.maxUploadSize {
			utils.BadRequestResponse(c, "File too large", fmt.Errorf("file exceeds %d bytes", h.maxUploadSize))
			return
		}
		file, err = header.Open()
		if err != nil {
			h.logger.WithError(err).Error("Failed to open uploaded file")
			utils.BadRequestResponse(c, "Failed to read uploaded file", err)
			return
		}
		defer file.Close()
		in.File = file
		in.FileName = header.Filename
	}

	record, err := h.recordService.UpdateReport(id, in)
	if err != nil {
		h.logger.WithError(err).WithField("record_id", id).Error("Failed to update report")
		respondError(c, err, "Failed to update report")
		return
	}

	utils.SuccessResponse(c, "Report updated successfully", record)
}

// DeleteReport clears a record's report but keeps the record
// @Summary Delete a record's report
// @Description Remove the stored report file and clear all report fields. The record itself remains.
// @Tags qrs
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse{data=response.RecordResponse} "Record with cleared report"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs/{id}/report [delete]
func (h *RecordHandler) DeleteReport(c *gin.Context) {
	id := c.Param("id")

	record, err := h.recordService.DeleteReport(id)
	if err != nil {
		h.logger.WithError(err).WithField("record_id", id).Error("Failed to delete report")
		respondError(c, err, "Failed to delete report")
		return
	}

	utils.SuccessResponse(c, "Report deleted successfully", record)
}

// BulkDelete removes a set of records
// @Summary Delete records in bulk
// @Description Remove the given records and their stored report files. Unknown ids are skipped.
// @Tags qrs
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Record ids to delete"
// @Success 200 {object} utils.APIResponse "Deleted count"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/qrs/bulk-delete [post]
func (h *RecordHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	count, err := h.recordService.BulkDelete(req.IDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete records")
		respondError(c, err, "Failed to delete records")
		return
	}

	utils.SuccessResponse(c, "Records deleted successfully", gin.H{"deleted": count})
}
