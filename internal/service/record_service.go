package service

import (
	"fmt"
	"io"
	"time"

	"github.com/cnsllgllr/qrmaster/internal/models"
	"github.com/cnsllgllr/qrmaster/internal/models/response"
	"github.com/cnsllgllr/qrmaster/internal/repository"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
)

// RecordInput is one item of a bulk record creation request
type RecordInput struct {
	ID        string `json:"id" binding:"required"`
	BatchID   string `json:"batchId" binding:"required"`
	CreatedAt int64  `json:"createdAt" binding:"required"`
}

// UpdateReportInput carries the optional pieces of a single-record report
// update. A nil File means no upload; nil Title/Note leave the stored values
// unchanged; RemoveFile wins last and clears the whole report.
type UpdateReportInput struct {
	File       io.Reader
	FileName   string
	Title      *string
	Note       *string
	RemoveFile bool
}

// RecordService defines the interface for record lifecycle operations. It is
// the only component sequencing work across the database and the filesystem.
type RecordService interface {
	BulkCreate(items []RecordInput) (int, error)
	ListRecords(batchID string) ([]*response.RecordResponse, error)
	GetRecord(id string) (*response.RecordResponse, error)
	UpdateReport(id string, in UpdateReportInput) (*response.RecordResponse, error)
	DeleteReport(id string) (*response.RecordResponse, error)
	BulkDelete(ids []string) (int64, error)
}

// recordService implements RecordService
type recordService struct {
	recordRepo repository.RecordRepository
	store      *storage.Store
	logger     *logger.Logger
}

// NewRecordService creates a new instance of RecordService
func NewRecordService(recordRepo repository.RecordRepository, store *storage.Store, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepo: recordRepo,
		store:      store,
		logger:     logger,
	}
}

// BulkCreate persists the given records with empty report fields and returns
// the created count. Bulk creation never carries files. Batch existence is
// intentionally not validated here (it is checked at read/delete time only);
// malformed items are rejected before any mutation.
func (s *recordService) BulkCreate(items []RecordInput) (int, error) {
	for i, item := range items {
		if item.ID == "" || item.BatchID == "" {
			return 0, fmt.Errorf("item %d: id and batchId are required", i)
		}
	}

	records := make([]*models.QRRecord, 0, len(items))
	for _, item := range items {
		records = append(records, &models.QRRecord{
			ID:        item.ID,
			BatchID:   item.BatchID,
			CreatedAt: item.CreatedAt,
		})
	}

	if err := s.recordRepo.InsertRecords(records); err != nil {
		return 0, err
	}

	s.logger.WithField("count", len(records)).Info("Records created")
	return len(records), nil
}

// ListRecords returns records newest-first, optionally filtered by batch
func (s *recordService) ListRecords(batchID string) ([]*response.RecordResponse, error) {
	records, err := s.recordRepo.List(batchID)
	if err != nil {
		return nil, err
	}

	results := make([]*response.RecordResponse, 0, len(records))
	for _, record := range records {
		results = append(results, s.toResponse(record))
	}
	return results, nil
}

// GetRecord returns a single record by id
func (s *recordService) GetRecord(id string) (*response.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record), nil
}

// UpdateReport applies a report update in the fixed order: store a new file
// and reclaim the one it replaces, set title, set note, and finally honor the
// remove flag, which clears all four report fields regardless of the earlier
// steps. The record is loaded first so no file is ever written for an unknown
// id.
func (s *recordService) UpdateReport(id string, in UpdateReportInput) (*response.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.File != nil && in.FileName != "" {
		storedName := storage.BuildStoredName(id, time.Now().Unix(), in.FileName)
		if err := s.store.Save(storedName, in.File); err != nil {
			return nil, err
		}

		if record.HasAttachment() {
			if err := s.store.Delete(*record.ReportFile); err != nil {
				s.logger.WithError(err).WithField("file", *record.ReportFile).Warn("Failed to remove replaced file")
			}
		}

		record, err = s.recordRepo.SetAttachment(id, storedName, in.FileName)
		if err != nil {
			return nil, err
		}
	}

	if in.Title != nil || in.Note != nil {
		record, err = s.recordRepo.UpdateReportFields(id, in.Title, in.Note)
		if err != nil {
			return nil, err
		}
	}

	if in.RemoveFile {
		if record.HasAttachment() {
			if err := s.store.Delete(*record.ReportFile); err != nil {
				s.logger.WithError(err).WithField("file", *record.ReportFile).Warn("Failed to remove stored file")
			}
		}
		record, err = s.recordRepo.ClearReport(id)
		if err != nil {
			return nil, err
		}
	}

	return s.toResponse(record), nil
}

// DeleteReport keeps the record but drops its report: the stored file is
// reclaimed best-effort, then all four report fields are cleared together.
func (s *recordService) DeleteReport(id string) (*response.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if record.HasAttachment() {
		if err := s.store.Delete(*record.ReportFile); err != nil {
			s.logger.WithError(err).WithField("file", *record.ReportFile).Warn("Failed to remove stored file")
		}
	}

	record, err = s.recordRepo.ClearReport(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record), nil
}

// BulkDelete removes the given record set. Stored files are reclaimed first,
// best-effort, so cleanup trouble never blocks the set-oriented row delete;
// the returned count reflects rows actually removed. An empty set is a no-op.
func (s *recordService) BulkDelete(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	names, err := s.recordRepo.FileNamesByIDs(ids)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if err := s.store.Delete(name); err != nil {
			s.logger.WithError(err).WithField("file", name).Warn("Failed to remove stored file during bulk delete")
		}
	}

	count, err := s.recordRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(ids),
		"removed":   count,
	}).Info("Records deleted")

	return count, nil
}

// toResponse maps a stored record to its caller-facing shape, resolving the
// storage name to a download URL.
func (s *recordService) toResponse(record *models.QRRecord) *response.RecordResponse {
	resp := &response.RecordResponse{
		ID:          record.ID,
		BatchID:     record.BatchID,
		CreatedAt:   record.CreatedAt,
		ReportTitle: record.ReportTitle,
		ReportNote:  record.ReportNote,
		FileName:    record.FileName,
	}
	if record.HasAttachment() {
		url := s.store.ResolveURL(*record.ReportFile)
		resp.ReportFile = &url
	}
	return resp
}
