package repository

import (
	"gorm.io/gorm"

	"github.com/cnsllgllr/qrmaster/internal/models"
)

// bulkInsertThreshold is the input size above which InsertRecords switches
// from row-by-row inserts to a set-oriented multi-row path. The switch is an
// optimization only; both paths persist the same final set atomically.
const bulkInsertThreshold = 1000

// insertBatchSize is the multi-row statement size used on the bulk path
const insertBatchSize = 500

// RecordRepository defines the interface for QR record data operations
type RecordRepository interface {
	InsertRecords(records []*models.QRRecord) error
	List(batchID string) ([]*models.QRRecord, error)
	GetByID(id string) (*models.QRRecord, error)
	UpdateReportFields(id string, title, note *string) (*models.QRRecord, error)
	SetAttachment(id, storedName, originalName string) (*models.QRRecord, error)
	ClearReport(id string) (*models.QRRecord, error)
	DeleteByIDs(ids []string) (int64, error)
	FileNamesByIDs(ids []string) ([]string, error)
	FileNamesByBatch(batchID string) ([]string, error)
	AllFileNames() ([]string, error)
}

// recordRepository implements RecordRepository
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new instance of RecordRepository
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// InsertRecords creates all records in one transaction: either every item is
// persisted or none. Above bulkInsertThreshold items the insert runs as
// multi-row statements; at or below it rows are created one by one, which is
// cheap at that scale and easier to reason about. A duplicate id fails the
// whole call with a conflict.
func (r *recordRepository) InsertRecords(records []*models.QRRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if len(records) > bulkInsertThreshold {
			return tx.CreateInBatches(records, insertBatchSize).Error
		}
		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return translate("insert records", err)
}

// List retrieves records newest-first by creation time; an empty batchID
// returns records across all batches.
func (r *recordRepository) List(batchID string) ([]*models.QRRecord, error) {
	records := []*models.QRRecord{}

	query := r.db.Order("created_at DESC")
	if batchID != "" {
		query = query.Where("batch_id = ?", batchID)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, translate("list records", err)
	}
	return records, nil
}

// GetByID retrieves a single record by id
func (r *recordRepository) GetByID(id string) (*models.QRRecord, error) {
	var record models.QRRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, translate("get record", err)
	}
	return &record, nil
}

// UpdateReportFields sets only the provided report fields; nil fields are
// left unchanged.
func (r *recordRepository) UpdateReportFields(id string, title, note *string) (*models.QRRecord, error) {
	updates := map[string]interface{}{}
	if title != nil {
		updates["report_title"] = *title
	}
	if note != nil {
		updates["report_note"] = *note
	}
	return r.updateRecord(id, "update report fields", updates)
}

// SetAttachment overwrites the attachment reference and its original display
// name together, leaving title and note untouched.
func (r *recordRepository) SetAttachment(id, storedName, originalName string) (*models.QRRecord, error) {
	return r.updateRecord(id, "set attachment", map[string]interface{}{
		"report_file": storedName,
		"file_name":   originalName,
	})
}

// ClearReport nulls the attachment reference, original file name, title and
// note together. All four or none.
func (r *recordRepository) ClearReport(id string) (*models.QRRecord, error) {
	return r.updateRecord(id, "clear report", map[string]interface{}{
		"report_file":  nil,
		"file_name":    nil,
		"report_title": nil,
		"report_note":  nil,
	})
}

// updateRecord applies the given column updates to an existing record inside
// one transaction and returns the refreshed row. Unknown ids fail before any
// mutation.
func (r *recordRepository) updateRecord(id, op string, updates map[string]interface{}) (*models.QRRecord, error) {
	var record models.QRRecord

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&record).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&record).Error
	})

	if err != nil {
		return nil, translate(op, err)
	}
	return &record, nil
}

// DeleteByIDs removes all records whose id is in the given set with one
// statement and reports how many rows were actually removed. Unknown ids are
// silently ignored.
func (r *recordRepository) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Where("id IN ?", ids).Delete(&models.QRRecord{})
	if result.Error != nil {
		return 0, translate("delete records", result.Error)
	}
	return result.RowsAffected, nil
}

// FileNamesByIDs returns the storage names owned by the given record ids;
// records without an attachment contribute nothing.
func (r *recordRepository) FileNamesByIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.fileNames(r.db.Where("id IN ?", ids))
}

// FileNamesByBatch returns the storage names owned by the batch's records
func (r *recordRepository) FileNamesByBatch(batchID string) ([]string, error) {
	return r.fileNames(r.db.Where("batch_id = ?", batchID))
}

// AllFileNames returns every storage name referenced by any record
func (r *recordRepository) AllFileNames() ([]string, error) {
	return r.fileNames(r.db)
}

func (r *recordRepository) fileNames(query *gorm.DB) ([]string, error) {
	var names []string
	err := query.Model(&models.QRRecord{}).
		Where("report_file IS NOT NULL").
		Pluck("report_file", &names).Error
	if err != nil {
		return nil, translate("query file names", err)
	}
	return names, nil
}
