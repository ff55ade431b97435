package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campuskit/enrollment-api/internal/models"
)

// Tx is one unit of work against the backing store. All reads and writes
// of a single enroll or cancel operation go through one Tx and become
// visible atomically at Commit.
type Tx interface {
	FindStudent(ctx context.Context, id int64) (*models.Student, error)
	FindCourse(ctx context.Context, id int64) (*models.Course, error)
	FindEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	// FindActiveEnrollment returns (nil, nil) when no ENROLLED row exists
	// for the pair.
	FindActiveEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListActiveEnrollments(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	// FindSchedule returns (nil, nil) for a course without a schedule.
	FindSchedule(ctx context.Context, courseID int64) (*models.Schedule, error)
	SumActiveCredits(ctx context.Context, studentID int64) (int, error)
	// IncrementEnrolled reserves a seat: it atomically increments enrolled
	// when enrolled < capacity and reports whether it did. This is the only
	// primitive allowed to reserve a seat.
	IncrementEnrolled(ctx context.Context, courseID int64) (bool, error)
	// DecrementEnrolled atomically decrements enrolled when enrolled > 0
	// and reports whether it did.
	DecrementEnrolled(ctx context.Context, courseID int64) (bool, error)
	InsertEnrollment(ctx context.Context, e *models.Enrollment) error
	MarkEnrollmentCancelled(ctx context.Context, id int64, at time.Time) error
	Commit() error
	Rollback() error
}

// Store begins units of work.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// SQLStore implements Store over PostgreSQL.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore constructs the store.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Begin opens a transaction.
func (s *SQLStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqlTx{tx: tx}, nil
}

type sqlTx struct {
	tx *sqlx.Tx
}

func (t *sqlTx) FindStudent(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT id, student_id, name, email, department_id FROM students WHERE id = $1`
	var student models.Student
	if err := t.tx.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

func (t *sqlTx) FindCourse(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, code, name, credits, capacity, enrolled, professor_id, department_id FROM courses WHERE id = $1`
	var course models.Course
	if err := t.tx.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

func (t *sqlTx) FindEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, status, enrolled_at, cancelled_at FROM enrollments WHERE id = $1`
	var enrollment models.Enrollment
	if err := t.tx.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (t *sqlTx) FindActiveEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, status, enrolled_at, cancelled_at FROM enrollments
        WHERE student_id = $1 AND course_id = $2 AND status = $3`
	var enrollment models.Enrollment
	if err := t.tx.GetContext(ctx, &enrollment, query, studentID, courseID, models.EnrollmentStatusEnrolled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (t *sqlTx) ListActiveEnrollments(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, status, enrolled_at, cancelled_at FROM enrollments
        WHERE student_id = $1 AND status = $2 ORDER BY id`
	var enrollments []models.Enrollment
	if err := t.tx.SelectContext(ctx, &enrollments, query, studentID, models.EnrollmentStatusEnrolled); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (t *sqlTx) FindSchedule(ctx context.Context, courseID int64) (*models.Schedule, error) {
	const query = `SELECT id, course_id, day_of_week, start_time, end_time FROM schedules WHERE course_id = $1`
	var schedule models.Schedule
	if err := t.tx.GetContext(ctx, &schedule, query, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (t *sqlTx) SumActiveCredits(ctx context.Context, studentID int64) (int, error) {
	const query = `SELECT COALESCE(SUM(c.credits), 0) FROM enrollments e
        JOIN courses c ON c.id = e.course_id
        WHERE e.student_id = $1 AND e.status = $2`
	var total int
	if err := t.tx.GetContext(ctx, &total, query, studentID, models.EnrollmentStatusEnrolled); err != nil {
		return 0, err
	}
	return total, nil
}

// The predicate and the update are one statement, so the backend evaluates
// them atomically; at most capacity increments can ever succeed no matter
// how many transactions race.
func (t *sqlTx) IncrementEnrolled(ctx context.Context, courseID int64) (bool, error) {
	const query = `UPDATE courses SET enrolled = enrolled + 1 WHERE id = $1 AND enrolled < capacity`
	res, err := t.tx.ExecContext(ctx, query, courseID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (t *sqlTx) DecrementEnrolled(ctx context.Context, courseID int64) (bool, error) {
	const query = `UPDATE courses SET enrolled = enrolled - 1 WHERE id = $1 AND enrolled > 0`
	res, err := t.tx.ExecContext(ctx, query, courseID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (t *sqlTx) InsertEnrollment(ctx context.Context, e *models.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, course_id, status, enrolled_at)
        VALUES ($1, $2, $3, $4) RETURNING id`
	return t.tx.GetContext(ctx, &e.ID, query, e.StudentID, e.CourseID, e.Status, e.EnrolledAt)
}

func (t *sqlTx) MarkEnrollmentCancelled(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE enrollments SET status = $2, cancelled_at = $3 WHERE id = $1`
	_, err := t.tx.ExecContext(ctx, query, id, models.EnrollmentStatusCancelled, at)
	return err
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	return t.tx.Rollback()
}

// Transient PostgreSQL failure classes: serialization failure, deadlock
// detected, lock not available (lock_timeout).
var transientPQCodes = map[pq.ErrorCode]struct{}{
	"40001": {},
	"40P01": {},
	"55P03": {},
}

// IsTransient reports whether the error is a backend contention failure
// the caller may retry.
func IsTransient(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		_, ok := transientPQCodes[pqErr.Code]
		return ok
	}
	return false
}
