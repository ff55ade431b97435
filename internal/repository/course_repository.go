package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// courseRow is a course joined with its optional schedule.
type courseRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Code         string         `db:"code"`
	Credits      int            `db:"credits"`
	Capacity     int            `db:"capacity"`
	Enrolled     int            `db:"enrolled"`
	ProfessorID  int64          `db:"professor_id"`
	DepartmentID int64          `db:"department_id"`
	DayOfWeek    sql.NullString `db:"day_of_week"`
	StartTime    sql.NullInt64  `db:"start_time"`
	EndTime      sql.NullInt64  `db:"end_time"`
}

func (row courseRow) toListItem() models.CourseListItem {
	item := models.CourseListItem{
		ID:           row.ID,
		Name:         row.Name,
		Code:         row.Code,
		Credits:      row.Credits,
		Capacity:     row.Capacity,
		Enrolled:     row.Enrolled,
		ProfessorID:  row.ProfessorID,
		DepartmentID: row.DepartmentID,
	}
	if row.DayOfWeek.Valid {
		formatted := models.Schedule{
			DayOfWeek: models.DayOfWeek(row.DayOfWeek.String),
			StartTime: models.MinuteOfDay(row.StartTime.Int64),
			EndTime:   models.MinuteOfDay(row.EndTime.Int64),
		}.String()
		item.Schedule = &formatted
	}
	return item
}

// CourseRepository handles read access and seed inserts for courses and
// their schedules.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses with their formatted schedule, optionally filtered
// by department.
func (r *CourseRepository) List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error) {
	query := `SELECT c.id, c.name, c.code, c.credits, c.capacity, c.enrolled, c.professor_id, c.department_id,
        s.day_of_week, s.start_time, s.end_time
        FROM courses c LEFT JOIN schedules s ON s.course_id = c.id`
	args := []interface{}{}
	if departmentID != nil {
		query += " WHERE c.department_id = $1"
		args = append(args, *departmentID)
	}
	query += fmt.Sprintf(" ORDER BY c.id OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	var rows []courseRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	items := make([]models.CourseListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toListItem())
	}
	return items, nil
}

// FindByID returns a course by id.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT id, code, name, credits, capacity, enrolled, professor_id, department_id FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// InsertBatch persists courses.
func (r *CourseRepository) InsertBatch(ctx context.Context, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	const query = `INSERT INTO courses (code, name, credits, capacity, enrolled, professor_id, department_id)
        VALUES (:code, :name, :credits, :capacity, :enrolled, :professor_id, :department_id)`
	if _, err := r.db.NamedExecContext(ctx, query, courses); err != nil {
		return fmt.Errorf("insert courses: %w", err)
	}
	return nil
}

// ListAll returns every course; used by the bootstrap to attach schedules.
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, code, name, credits, capacity, enrolled, professor_id, department_id FROM courses ORDER BY id`
	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list all courses: %w", err)
	}
	return courses, nil
}
