package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cnsllgllr/qrmaster/internal/repository"
	"github.com/cnsllgllr/qrmaster/internal/storage"
	"github.com/cnsllgllr/qrmaster/pkg/logger"
)

// CleanupScheduler periodically removes stored files no record references.
// Best-effort file deletes elsewhere can leave such files behind; this is the
// retry path.
type CleanupScheduler struct {
	recordRepo     repository.RecordRepository
	store          *storage.Store
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	minAge         time.Duration
}

// NewCleanupScheduler creates a new cleanup scheduler
func NewCleanupScheduler(recordRepo repository.RecordRepository, store *storage.Store, logger *logger.Logger, cronExpression string, minAge time.Duration) *CleanupScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CleanupScheduler{
		recordRepo:     recordRepo,
		store:          store,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		minAge:         minAge,
	}
}

// Start initializes and starts the scheduled sweep
func (s *CleanupScheduler) Start() error {
	if s.cronExpression == "" {
		s.logger.Info("Cleanup scheduler disabled")
		return nil
	}

	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling orphan file cleanup job")
	_, err := s.cron.AddFunc(s.cronExpression, s.sweepOrphanFiles)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Cleanup scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *CleanupScheduler) Stop() {
	s.logger.Info("Stopping cleanup scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cleanup scheduler stopped successfully")
}

// sweepOrphanFiles deletes files in the upload directory that no record
// references. Files younger than minAge are kept so a save racing the sweep is
// never reclaimed.
func (s *CleanupScheduler) sweepOrphanFiles() {
	s.logger.Info("Starting orphan file sweep...")

	names, err := s.recordRepo.AllFileNames()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list referenced files, skipping sweep")
		return
	}

	referenced := make(map[string]struct{}, len(names))
	for _, name := range names {
		referenced[name] = struct{}{}
	}

	entries, err := os.ReadDir(s.store.Dir())
	if err != nil {
		s.logger.WithError(err).Error("Failed to read upload directory, skipping sweep")
		return
	}

	cutoff := time.Now().Add(-s.minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.store.Dir(), entry.Name())); err != nil {
			s.logger.WithError(err).WithField("file", entry.Name()).Warn("Failed to remove orphan file")
			continue
		}
		removed++
		s.logger.WithField("file", entry.Name()).Info("Removed orphan file")
	}

	s.logger.WithFields(map[string]interface{}{
		"scanned": len(entries),
		"removed": removed,
	}).Info("Orphan file sweep completed")
}
