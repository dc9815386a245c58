package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cnsllgllr/qrmaster/internal/repository"
)

// ExportService builds downloadable exports of batch contents
type ExportService interface {
	ExportBatchRecords(batchID string) ([]byte, string, error)
}

// exportService implements ExportService
type exportService struct {
	recordRepo repository.RecordRepository
}

// NewExportService creates a new instance of ExportService
func NewExportService(recordRepo repository.RecordRepository) ExportService {
	return &exportService{recordRepo: recordRepo}
}

// ExportBatchRecords renders the batch's records to an xlsx workbook and
// returns the file bytes together with a suggested file name.
func (s *exportService) ExportBatchRecords(batchID string) ([]byte, string, error) {
	records, err := s.recordRepo.List(batchID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get records: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheetName := "QR Records"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"No", "ID", "Created At", "Report Title", "Report Note", "File Name"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, record := range records {
		created := time.UnixMilli(record.CreatedAt).Format("2006-01-02 15:04:05")
		values := []interface{}{
			rowIdx + 1,
			record.ID,
			created,
			deref(record.ReportTitle),
			deref(record.ReportNote),
			deref(record.FileName),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("qr_batch_%s_%s.xlsx", batchID, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
