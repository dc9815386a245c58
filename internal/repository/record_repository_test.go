package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cnsllgllr/qrmaster/internal/apperr"
	"github.com/cnsllgllr/qrmaster/internal/models"
)

func strptr(s string) *string { return &s }

func TestInsertRecordsRowByRowPath(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)

	records := []*models.QRRecord{
		{ID: "r1", BatchID: "b1", CreatedAt: 100},
		{ID: "r2", BatchID: "b1", CreatedAt: 300},
		{ID: "r3", BatchID: "b1", CreatedAt: 200},
	}
	if err := repo.InsertRecords(records); err != nil {
		t.Fatalf("InsertRecords() error = %v", err)
	}

	got, err := repo.List("b1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	// Newest createdAt first
	wantOrder := []string{"r2", "r3", "r1"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
	// Report fields start null
	if got[0].ReportTitle != nil || got[0].ReportFile != nil {
		t.Errorf("fresh record carries report fields: %+v", got[0])
	}
}

func TestInsertRecordsBulkPath(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)

	// One past the threshold forces the set-oriented path
	n := bulkInsertThreshold + 1
	records := make([]*models.QRRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, &models.QRRecord{
			ID:        fmt.Sprintf("bulk-%04d", i),
			BatchID:   "b1",
			CreatedAt: int64(i),
		})
	}
	if err := repo.InsertRecords(records); err != nil {
		t.Fatalf("InsertRecords() error = %v", err)
	}

	got, err := repo.List("b1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != n {
		t.Fatalf("got %d records, want %d", len(got), n)
	}
	// Strategy choice must not be observable: ordering is still newest-first
	if got[0].ID != fmt.Sprintf("bulk-%04d", n-1) {
		t.Errorf("first record = %s, want bulk-%04d", got[0].ID, n-1)
	}
}

func TestInsertRecordsEmptyInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)

	if err := repo.InsertRecords(nil); err != nil {
		t.Errorf("InsertRecords(nil) error = %v, want nil", err)
	}
}

func TestInsertRecordsDuplicateIDRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)

	if err := repo.InsertRecords([]*models.QRRecord{{ID: "r1", BatchID: "b1", CreatedAt: 1}}); err != nil {
		t.Fatalf("seed insert error = %v", err)
	}

	err := repo.InsertRecords([]*models.QRRecord{
		{ID: "fresh", BatchID: "b1", CreatedAt: 2},
		{ID: "r1", BatchID: "b1", CreatedAt: 3}, // duplicate
	})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("InsertRecords() error = %v, want ErrConflict", err)
	}

	// The failed call must leave prior state unchanged: no partial insert
	got, listErr := repo.List("b1")
	if listErr != nil {
		t.Fatalf("List() error = %v", listErr)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("records after rollback = %d, want only the seeded r1", len(got))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)

	_, err := repo.GetByID("missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateReportFieldsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)
	if err := repo.InsertRecords([]*models.QRRecord{{ID: "r1", BatchID: "b1", CreatedAt: 1}}); err != nil {
		t.Fatalf("seed insert error = %v", err)
	}

	rec, err := repo.UpdateReportFields("r1", strptr("title A"), strptr("note A"))
	if err != nil {
		t.Fatalf("UpdateReportFields() error = %v", err)
	}
	if rec.ReportTitle == nil || *rec.ReportTitle != "title A" {
		t.Errorf("ReportTitle = %v, want title A", rec.ReportTitle)
	}

	// Absent note leaves the stored note unchanged
	rec, err = repo.UpdateReportFields("r1", strptr("title B"), nil)
	if err != nil {
		t.Fatalf("UpdateReportFields() error = %v", err)
	}
	if rec.ReportTitle == nil || *rec.ReportTitle != "title B" {
		t.Errorf("ReportTitle = %v, want title B", rec.ReportTitle)
	}
	if rec.ReportNote == nil || *rec.ReportNote != "note A" {
		t.Errorf("ReportNote = %v, want unchanged note A", rec.ReportNote)
	}

	_, err = repo.UpdateReportFields("missing", strptr("x"), nil)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("UpdateReportFields() on unknown id error = %v, want ErrNotFound", err)
	}
}

func TestSetAttachmentAndClearReport(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)
	if err := repo.InsertRecords([]*models.QRRecord{{ID: "r1", BatchID: "b1", CreatedAt: 1}}); err != nil {
		t.Fatalf("seed insert error = %v", err)
	}
	if _, err := repo.UpdateReportFields("r1", strptr("keep me"), strptr("and me")); err != nil {
		t.Fatalf("UpdateReportFields() error = %v", err)
	}

	rec, err := repo.SetAttachment("r1", "r1_100_doc.pdf", "doc.pdf")
	if err != nil {
		t.Fatalf("SetAttachment() error = %v", err)
	}
	if rec.ReportFile == nil || *rec.ReportFile != "r1_100_doc.pdf" {
		t.Errorf("ReportFile = %v, want r1_100_doc.pdf", rec.ReportFile)
	}
	if rec.FileName == nil || *rec.FileName != "doc.pdf" {
		t.Errorf("FileName = %v, want doc.pdf", rec.FileName)
	}
	// Attachment overwrite leaves title/note untouched
	if rec.ReportTitle == nil || *rec.ReportTitle != "keep me" {
		t.Errorf("ReportTitle = %v, want keep me", rec.ReportTitle)
	}

	rec, err = repo.ClearReport("r1")
	if err != nil {
		t.Fatalf("ClearReport() error = %v", err)
	}
	// All four report fields clear together
	if rec.ReportFile != nil || rec.FileName != nil || rec.ReportTitle != nil || rec.ReportNote != nil {
		t.Errorf("ClearReport() left fields set: %+v", rec)
	}

	_, err = repo.ClearReport("missing")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("ClearReport() on unknown id error = %v, want ErrNotFound", err)
	}
}

func TestDeleteByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)
	if err := repo.InsertRecords([]*models.QRRecord{
		{ID: "r1", BatchID: "b1", CreatedAt: 1},
		{ID: "r2", BatchID: "b1", CreatedAt: 2},
		{ID: "r3", BatchID: "b1", CreatedAt: 3},
	}); err != nil {
		t.Fatalf("seed insert error = %v", err)
	}

	// Unknown ids are ignored; count reflects rows actually removed
	count, err := repo.DeleteByIDs([]string{"r1", "r3", "ghost"})
	if err != nil {
		t.Fatalf("DeleteByIDs() error = %v", err)
	}
	if count != 2 {
		t.Errorf("DeleteByIDs() count = %d, want 2", count)
	}

	count, err = repo.DeleteByIDs(nil)
	if err != nil {
		t.Fatalf("DeleteByIDs(nil) error = %v", err)
	}
	if count != 0 {
		t.Errorf("DeleteByIDs(nil) count = %d, want 0", count)
	}

	got, err := repo.List("b1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "r2" {
		t.Errorf("remaining = %d, want only r2", len(got))
	}
}

func TestFileNameQueries(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	mustCreateBatch(t, db, "b1", "batch", 1)
	mustCreateBatch(t, db, "b2", "other", 2)
	if err := repo.InsertRecords([]*models.QRRecord{
		{ID: "r1", BatchID: "b1", CreatedAt: 1},
		{ID: "r2", BatchID: "b1", CreatedAt: 2},
		{ID: "r3", BatchID: "b2", CreatedAt: 3},
	}); err != nil {
		t.Fatalf("seed insert error = %v", err)
	}
	if _, err := repo.SetAttachment("r1", "r1_1_a.pdf", "a.pdf"); err != nil {
		t.Fatalf("SetAttachment() error = %v", err)
	}
	if _, err := repo.SetAttachment("r3", "r3_1_c.pdf", "c.pdf"); err != nil {
		t.Fatalf("SetAttachment() error = %v", err)
	}

	names, err := repo.FileNamesByIDs([]string{"r1", "r2", "ghost"})
	if err != nil {
		t.Fatalf("FileNamesByIDs() error = %v", err)
	}
	if len(names) != 1 || names[0] != "r1_1_a.pdf" {
		t.Errorf("FileNamesByIDs() = %v, want [r1_1_a.pdf]", names)
	}

	names, err = repo.FileNamesByBatch("b2")
	if err != nil {
		t.Fatalf("FileNamesByBatch() error = %v", err)
	}
	if len(names) != 1 || names[0] != "r3_1_c.pdf" {
		t.Errorf("FileNamesByBatch() = %v, want [r3_1_c.pdf]", names)
	}

	names, err = repo.AllFileNames()
	if err != nil {
		t.Fatalf("AllFileNames() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("AllFileNames() = %v, want 2 names", names)
	}

	names, err = repo.FileNamesByIDs(nil)
	if err != nil || names != nil {
		t.Errorf("FileNamesByIDs(nil) = %v, %v, want nil, nil", names, err)
	}
}
