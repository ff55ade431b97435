package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryListFormatsSchedule(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "code", "credits", "capacity", "enrolled", "professor_id", "department_id", "day_of_week", "start_time", "end_time"}).
		AddRow(1, "Algorithms", "CS201", 3, 30, 12, 5, 1, "MON", 540, 630).
		AddRow(2, "Databases", "CS301", 3, 40, 0, 6, 1, nil, nil, nil)
	mock.ExpectQuery("SELECT c.id, c.name, c.code").
		WithArgs(0, 100).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Schedule)
	assert.Equal(t, "MON 09:00-10:30", *items[0].Schedule)
	assert.Nil(t, items[1].Schedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListDepartmentFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("WHERE c.department_id").
		WithArgs(int64(3), 10, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "credits", "capacity", "enrolled", "professor_id", "department_id", "day_of_week", "start_time", "end_time"}))

	dept := int64(3)
	items, err := repo.List(context.Background(), &dept, 10, 50)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT id, code, name, credits, capacity, enrolled, professor_id, department_id FROM courses").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "credits", "capacity", "enrolled", "professor_id", "department_id"}).
			AddRow(7, "CS101", "Intro", 3, 30, 29, 5, 1))

	course, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, course.SeatsLeft())
	assert.NoError(t, mock.ExpectationsWereMet())
}
