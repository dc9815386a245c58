package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cnsllgllr/qrmaster/internal/models"
)

// newTestDB opens an isolated in-memory database migrated with the
// application schema. Each test gets its own named memory DB so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func mustCreateBatch(t *testing.T, db *gorm.DB, id, name string, createdAt int64) *models.Batch {
	t.Helper()
	batch := &models.Batch{ID: id, Name: name, CreatedAt: createdAt}
	if err := NewBatchRepository(db).Create(batch); err != nil {
		t.Fatalf("creating batch %s: %v", id, err)
	}
	return batch
}
