package service

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cnsllgllr/qrmaster/internal/models"
	"github.com/cnsllgllr/qrmaster/internal/repository"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	applog "github.com/cnsllgllr/qrmaster/pkg/logger"
)

type testEnv struct {
	db         *gorm.DB
	store      *storage.Store
	batchRepo  repository.BatchRepository
	recordRepo repository.RecordRepository
	batches    BatchService
	records    RecordService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Batch{}, &models.QRRecord{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	store, err := storage.NewStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	log := applog.NewLogger("error", "text")
	batchRepo := repository.NewBatchRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	return &testEnv{
		db:         db,
		store:      store,
		batchRepo:  batchRepo,
		recordRepo: recordRepo,
		batches:    NewBatchService(batchRepo, recordRepo, store, log),
		records:    NewRecordService(recordRepo, store, log),
	}
}

// storedFiles lists the non-temp files currently in the upload dir
func (e *testEnv) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.store.Dir())
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names
}

func (e *testEnv) mustBulkCreate(t *testing.T, items ...RecordInput) {
	t.Helper()
	if _, err := e.records.BulkCreate(items); err != nil {
		t.Fatalf("BulkCreate() error = %v", err)
	}
}
