package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/enrollment-api/internal/models"
)

// DepartmentRepository persists departments; they are created at bootstrap
// and immutable afterwards.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository constructs the repository.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Insert persists a department and fills its id.
func (r *DepartmentRepository) Insert(ctx context.Context, dept *models.Department) error {
	const query = `INSERT INTO departments (name) VALUES ($1) RETURNING id`
	if err := r.db.GetContext(ctx, &dept.ID, query, dept.Name); err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}