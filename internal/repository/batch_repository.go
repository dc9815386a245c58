package repository

import (
	"gorm.io/gorm"

	"github.com/cnsllgllr/qrmaster/internal/models"
	"github.com/cnsllgllr/qrmaster/internal/models/response"
)

// BatchRepository defines the interface for batch data operations
type BatchRepository interface {
	Create(batch *models.Batch) error
	ListWithCounts() ([]*response.BatchResponse, error)
	DeleteWithRecords(batchID string) error
}

// batchRepository implements BatchRepository
type batchRepository struct {
	db *gorm.DB
}

// NewBatchRepository creates a new instance of BatchRepository
func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

// Create persists a new batch row
func (r *batchRepository) Create(batch *models.Batch) error {
	return translate("create batch", r.db.Create(batch).Error)
}

// ListWithCounts retrieves all batches newest-first, each annotated with the
// number of records it currently owns. Batches with zero records still
// appear, with count 0.
func (r *batchRepository) ListWithCounts() ([]*response.BatchResponse, error) {
	results := []*response.BatchResponse{}

	query := `
		SELECT b.id, b.name, b.created_at, COUNT(r.id) AS qr_count
		FROM batches b
		LEFT JOIN qr_records r ON r.batch_id = b.id
		GROUP BY b.id, b.name, b.created_at
		ORDER BY b.created_at DESC
	`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, translate("list batches", err)
	}
	return results, nil
}

// DeleteWithRecords removes every record owned by the batch and then the
// batch row itself as one transactional unit. Affecting zero rows is still
// success; a failure in either step rolls back both.
func (r *batchRepository) DeleteWithRecords(batchID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", batchID).Delete(&models.QRRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", batchID).Delete(&models.Batch{}).Error
	})
	return translate("delete batch", err)
}
