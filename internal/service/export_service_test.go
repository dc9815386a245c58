package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportBatchRecords(t *testing.T) {
	env := newTestEnv(t)
	exporter := NewExportService(env.recordRepo)

	env.mustBulkCreate(t,
		RecordInput{ID: "r1", BatchID: "b1", CreatedAt: 100},
		RecordInput{ID: "r2", BatchID: "b1", CreatedAt: 200},
	)
	if _, err := env.records.UpdateReport("r1", UpdateReportInput{Title: titlePtr("checked")}); err != nil {
		t.Fatalf("UpdateReport() error = %v", err)
	}

	data, filename, err := exporter.ExportBatchRecords("b1")
	if err != nil {
		t.Fatalf("ExportBatchRecords() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("exported workbook is empty")
	}
	if !strings.HasPrefix(filename, "qr_batch_b1_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q, want qr_batch_b1_*.xlsx", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("QR Records")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	// Header plus one row per record
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][1] != "ID" {
		t.Errorf("header cell = %q, want ID", rows[0][1])
	}
	// Records export newest-first, so r2 comes before r1
	if rows[1][1] != "r2" || rows[2][1] != "r1" {
		t.Errorf("row order = [%s, %s], want [r2, r1]", rows[1][1], rows[2][1])
	}
}
