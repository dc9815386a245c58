package repository

import (
	"testing"

	"github.com/cnsllgllr/qrmaster/internal/models"
)

func TestBatchListWithCounts(t *testing.T) {
	db := newTestDB(t)
	batchRepo := NewBatchRepository(db)
	recordRepo := NewRecordRepository(db)

	mustCreateBatch(t, db, "b-old", "older", 100)
	mustCreateBatch(t, db, "b-new", "newer", 200)

	err := recordRepo.InsertRecords([]*models.QRRecord{
		{ID: "r1", BatchID: "b-old", CreatedAt: 1},
		{ID: "r2", BatchID: "b-old", CreatedAt: 2},
	})
	if err != nil {
		t.Fatalf("InsertRecords() error = %v", err)
	}

	batches, err := batchRepo.ListWithCounts()
	if err != nil {
		t.Fatalf("ListWithCounts() error = %v", err)
	}

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	// Newest createdAt first
	if batches[0].ID != "b-new" || batches[1].ID != "b-old" {
		t.Errorf("order = [%s, %s], want [b-new, b-old]", batches[0].ID, batches[1].ID)
	}
	// Empty batches still appear, with count 0
	if batches[0].QRCount != 0 {
		t.Errorf("b-new QRCount = %d, want 0", batches[0].QRCount)
	}
	if batches[1].QRCount != 2 {
		t.Errorf("b-old QRCount = %d, want 2", batches[1].QRCount)
	}
}

func TestBatchDeleteWithRecords(t *testing.T) {
	db := newTestDB(t)
	batchRepo := NewBatchRepository(db)
	recordRepo := NewRecordRepository(db)

	mustCreateBatch(t, db, "b1", "doomed", 100)
	mustCreateBatch(t, db, "b2", "survivor", 200)

	err := recordRepo.InsertRecords([]*models.QRRecord{
		{ID: "r1", BatchID: "b1", CreatedAt: 1},
		{ID: "r2", BatchID: "b1", CreatedAt: 2},
		{ID: "r3", BatchID: "b2", CreatedAt: 3},
	})
	if err != nil {
		t.Fatalf("InsertRecords() error = %v", err)
	}

	if err := batchRepo.DeleteWithRecords("b1"); err != nil {
		t.Fatalf("DeleteWithRecords() error = %v", err)
	}

	batches, err := batchRepo.ListWithCounts()
	if err != nil {
		t.Fatalf("ListWithCounts() error = %v", err)
	}
	if len(batches) != 1 || batches[0].ID != "b2" {
		t.Fatalf("remaining batches = %v, want only b2", batches)
	}

	records, err := recordRepo.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "r3" {
		t.Errorf("remaining records = %d, want only r3", len(records))
	}
}

func TestBatchDeleteUnknownIDSucceeds(t *testing.T) {
	db := newTestDB(t)

	if err := NewBatchRepository(db).DeleteWithRecords("no-such-batch"); err != nil {
		t.Errorf("DeleteWithRecords() on unknown id error = %v, want nil", err)
	}
}
