package history

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Repository reads and writes interval records.
type Repository struct {
	db *DB
}

// NewRepository creates a repository on db.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a record.
func (r *Repository) Insert(ctx context.Context, record *IntervalRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert interval record")
	}
	return nil
}

// Since returns records that started at or after since, oldest first.
func (r *Repository) Since(ctx context.Context, since time.Time) ([]IntervalRecord, error) {
	var records []IntervalRecord
	result := r.db.WithContext(ctx).
		Where("started_at >= ?", since).
		Order("started_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query interval records")
	}
	return records, nil
}

// Summary aggregates records per state since the given instant.
func (r *Repository) Summary(ctx context.Context, since time.Time) ([]StateSummary, error) {
	var summaries []StateSummary
	result := r.db.WithContext(ctx).
		Model(&IntervalRecord{}).
		Select("state, COUNT(*) as intervals, SUM(active_seconds) as total_seconds").
		Where("started_at >= ?", since).
		Group("state").
		Order("state ASC").
		Scan(&summaries)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to query interval summary")
	}
	return summaries, nil
}
