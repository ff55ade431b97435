package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// EnrollmentRepository serves the read-only enrollment projections. All
// writes go through the transactional store.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListByStudent returns a student's enrollments, optionally filtered by
// status.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64, status models.EnrollmentStatus) ([]models.Enrollment, error) {
	query := `SELECT id, student_id, course_id, status, enrolled_at, cancelled_at FROM enrollments WHERE student_id = $1`
	args := []interface{}{studentID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY id"

	enrollments := []models.Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// ActiveCourseItems returns the courses a student is currently enrolled
// in, with formatted schedules, for the timetable projection.
func (r *EnrollmentRepository) ActiveCourseItems(ctx context.Context, studentID int64) ([]models.CourseListItem, error) {
	const query = `SELECT c.id, c.name, c.code, c.credits, c.capacity, c.enrolled, c.professor_id, c.department_id,
        s.day_of_week, s.start_time, s.end_time
        FROM enrollments e
        JOIN courses c ON c.id = e.course_id
        LEFT JOIN schedules s ON s.course_id = c.id
        WHERE e.student_id = $1 AND e.status = $2
        ORDER BY c.id`

	var rows []courseRow
	if err := r.db.SelectContext(ctx, &rows, query, studentID, models.EnrollmentStatusEnrolled); err != nil {
		return nil, fmt.Errorf("list active courses: %w", err)
	}

	items := make([]models.CourseListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toListItem())
	}
	return items, nil
}
