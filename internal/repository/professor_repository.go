package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// ProfessorRepository handles read access and seed inserts for professors.
type ProfessorRepository struct {
	db *sqlx.DB
}

// NewProfessorRepository constructs the repository.
func NewProfessorRepository(db *sqlx.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// List returns professors ordered by id with offset pagination.
func (r *ProfessorRepository) List(ctx context.Context, skip, limit int) ([]models.Professor, error) {
	const query = `SELECT id, name, email, department_id FROM professors ORDER BY id OFFSET $1 LIMIT $2`
	professors := []models.Professor{}
	if err := r.db.SelectContext(ctx, &professors, query, skip, limit); err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return professors, nil
}

// ListAll returns every professor; used by the bootstrap to assign courses.
func (r *ProfessorRepository) ListAll(ctx context.Context) ([]models.Professor, error) {
	const query = `SELECT id, name, email, department_id FROM professors ORDER BY id`
	professors := []models.Professor{}
	if err := r.db.SelectContext(ctx, &professors, query); err != nil {
		return nil, fmt.Errorf("list all professors: %w", err)
	}
	return professors, nil
}

// InsertBatch persists professors.
func (r *ProfessorRepository) InsertBatch(ctx context.Context, professors []models.Professor) error {
	if len(professors) == 0 {
		return nil
	}
	const query = `INSERT INTO professors (name, email, department_id)
        VALUES (:name, :email, :department_id)`
	if _, err := r.db.NamedExecContext(ctx, query, professors); err != nil {
		return fmt.Errorf("insert professors: %w", err)
	}
	return nil
}
