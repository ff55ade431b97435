package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// StudentRepository handles read access and seed inserts for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students ordered by id with offset pagination.
func (r *StudentRepository) List(ctx context.Context, skip, limit int) ([]models.Student, error) {
	const query = `SELECT id, student_id, name, email, department_id FROM students ORDER BY id OFFSET $1 LIMIT $2`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, skip, limit); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID returns a student by its internal id.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT id, student_id, name, email, department_id FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// InsertBatch persists students in chunks sized for the wire protocol.
func (r *StudentRepository) InsertBatch(ctx context.Context, students []models.Student) error {
	const chunkSize = 1000
	const query = `INSERT INTO students (student_id, name, email, department_id)
        VALUES (:student_id, :name, :email, :department_id)`
	for start := 0; start < len(students); start += chunkSize {
		end := start + chunkSize
		if end > len(students) {
			end = len(students)
		}
		if _, err := r.db.NamedExecContext(ctx, query, students[start:end]); err != nil {
			return fmt.Errorf("insert students: %w", err)
		}
	}
	return nil
}
