package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// ScheduleRepository persists course schedules at bootstrap.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// InsertBatch persists schedules in chunks.
func (r *ScheduleRepository) InsertBatch(ctx context.Context, schedules []models.Schedule) error {
	const chunkSize = 1000
	const query = `INSERT INTO schedules (course_id, day_of_week, start_time, end_time)
        VALUES (:course_id, :day_of_week, :start_time, :end_time)`
	for start := 0; start < len(schedules); start += chunkSize {
		end := start + chunkSize
		if end > len(schedules) {
			end = len(schedules)
		}
		if _, err := r.db.NamedExecContext(ctx, query, schedules[start:end]); err != nil {
			return fmt.Errorf("insert schedules: %w", err)
		}
	}
	return nil
}
