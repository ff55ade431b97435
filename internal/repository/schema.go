package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaDDL mirrors the domain model one-to-one. The partial unique index
// on enrollments enforces the single-active-enrollment rule at the store
// level as well; start/end times are stored as minutes after midnight.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS departments (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS professors (
    id            BIGSERIAL PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    department_id BIGINT NOT NULL REFERENCES departments (id)
);

CREATE TABLE IF NOT EXISTS courses (
    id            BIGSERIAL PRIMARY KEY,
    code          TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    credits       INT NOT NULL CHECK (credits BETWEEN 1 AND 4),
    capacity      INT NOT NULL CHECK (capacity >= 0),
    enrolled      INT NOT NULL DEFAULT 0 CHECK (enrolled >= 0 AND enrolled <= capacity),
    professor_id  BIGINT NOT NULL REFERENCES professors (id),
    department_id BIGINT NOT NULL REFERENCES departments (id)
);

CREATE TABLE IF NOT EXISTS schedules (
    id          BIGSERIAL PRIMARY KEY,
    course_id   BIGINT NOT NULL UNIQUE REFERENCES courses (id),
    day_of_week TEXT NOT NULL,
    start_time  SMALLINT NOT NULL,
    end_time    SMALLINT NOT NULL,
    CHECK (start_time < end_time)
);

CREATE TABLE IF NOT EXISTS students (
    id            BIGSERIAL PRIMARY KEY,
    student_id    TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    department_id BIGINT NOT NULL REFERENCES departments (id)
);

CREATE TABLE IF NOT EXISTS enrollments (
    id           BIGSERIAL PRIMARY KEY,
    student_id   BIGINT NOT NULL REFERENCES students (id),
    course_id    BIGINT NOT NULL REFERENCES courses (id),
    status       TEXT NOT NULL,
    enrolled_at  TIMESTAMPTZ NOT NULL,
    cancelled_at TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS enrollments_active_unique
    ON enrollments (student_id, course_id) WHERE status = 'ENROLLED';
CREATE INDEX IF NOT EXISTS enrollments_student_idx ON enrollments (student_id);
CREATE INDEX IF NOT EXISTS courses_department_idx ON courses (department_id);
`

// SchemaRepository creates and resets the relational schema at bootstrap.
type SchemaRepository struct {
	db *sqlx.DB
}

// NewSchemaRepository constructs the repository.
func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Ensure creates tables and indexes if they do not exist.
func (r *SchemaRepository) Ensure(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ClearAll removes every row in dependency order.
func (r *SchemaRepository) ClearAll(ctx context.Context) error {
	for _, table := range []string{"enrollments", "schedules", "courses", "students", "professors", "departments"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
