package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cnsllgllr/qrmaster/internal/models"
	"github.com/cnsllgllr/qrmaster/internal/models/response"
	"github.com/cnsllgllr/qrmaster/internal/repository"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
)

// defaultBatchNameFormat renders a creation timestamp like "10 October 2023 14:30"
const defaultBatchNameFormat = "02 January 2006 15:04"

// BatchService defines the interface for batch lifecycle operations
type BatchService interface {
	CreateBatch(name string) (*response.BatchResponse, error)
	ListBatches() ([]*response.BatchResponse, error)
	DeleteBatch(batchID string) error
}

// batchService implements BatchService
type batchService struct {
	batchRepo  repository.BatchRepository
	recordRepo repository.RecordRepository
	store      *storage.Store
	logger     *logger.Logger
}

// NewBatchService creates a new instance of BatchService
func NewBatchService(batchRepo repository.BatchRepository, recordRepo repository.RecordRepository, store *storage.Store, logger *logger.Logger) BatchService {
	return &batchService{
		batchRepo:  batchRepo,
		recordRepo: recordRepo,
		store:      store,
		logger:     logger,
	}
}

// CreateBatch creates a batch with a fresh id. An empty or whitespace name is
// replaced by one synthesized from the creation timestamp.
func (s *batchService) CreateBatch(name string) (*response.BatchResponse, error) {
	now := time.Now()
	createdAt := now.UnixMilli()

	name = strings.TrimSpace(name)
	if name == "" {
		name = now.Format(defaultBatchNameFormat)
	}

	batch := &models.Batch{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: createdAt,
	}

	if err := s.batchRepo.Create(batch); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"batch_id": batch.ID,
		"name":     batch.Name,
	}).Info("Batch created")

	return &response.BatchResponse{
		ID:        batch.ID,
		Name:      batch.Name,
		CreatedAt: batch.CreatedAt,
		QRCount:   0,
	}, nil
}

// ListBatches returns all batches newest-first with their record counts
func (s *batchService) ListBatches() ([]*response.BatchResponse, error) {
	return s.batchRepo.ListWithCounts()
}

// DeleteBatch removes a batch, its records and their stored files. Files are
// reclaimed first, best-effort: a file that cannot be removed is logged and
// skipped, because once the database forgets the reference the file would be
// unreachable garbage with no retry path. The database portion is one
// transactional unit and rolls back as a whole on failure.
func (s *batchService) DeleteBatch(batchID string) error {
	names, err := s.recordRepo.FileNamesByBatch(batchID)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := s.store.Delete(name); err != nil {
			s.logger.WithError(err).WithField("file", name).Warn("Failed to remove stored file during batch deletion")
		}
	}

	if err := s.batchRepo.DeleteWithRecords(batchID); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"batch_id": batchID,
		"files":    len(names),
	}).Info("Batch deleted")

	return nil
}
