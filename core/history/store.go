package history

import (
	"context"
	"fmt"

	"save-sync/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit is the number of runs returned when no limit is given.
const DefaultLimit = 20

// Store persists sync runs with gorm.
type Store struct {
	db *gorm.DB
}

// NewStore creates a history store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the history tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Run{}, &FileRecord{}); err != nil {
		return fmt.Errorf("failed to migrate history tables: %w", err)
	}
	return nil
}

// Record stores a finished report for world.
func (s *Store) Record(ctx context.Context, world string, report *reconcile.Report) (*Run, error) {
	run := NewRun(world, report)
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to record sync run: %w", err)
	}
	return run, nil
}

// Recent returns the latest runs, newest first, with their file records.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Preload("Files").
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sync history: %w", err)
	}
	return runs, nil
}

// NewRun converts a report into an unsaved Run with a fresh id.
func NewRun(world string, report *reconcile.Report) *Run {
	run := &Run{
		ID:          uuid.NewString(),
		Direction:   string(report.Direction),
		Profile:     report.Profile,
		World:       world,
		Marker:      report.Marker,
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Synced:      report.Synced(),
		Failed:      report.Failed(),
		Transferred: report.Transferred(),
		Summary:     report.Summary(),
		Files:       make([]FileRecord, 0, len(report.Files)),
	}

	for _, f := range report.Files {
		run.Files = append(run.Files, FileRecord{
			RunID:   run.ID,
			Name:    f.Name,
			Action:  string(f.Action),
			Outcome: string(f.Outcome),
			Reason:  f.Reason,
			Backup:  f.Backup,
			Bytes:   f.Bytes,
			Error:   f.Error,
		})
	}
	return run
}
