package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/enrollment-api/internal/models"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

type studentRepoMock struct {
	students map[int64]models.Student
}

func (m *studentRepoMock) List(ctx context.Context, skip, limit int) ([]models.Student, error) {
	var result []models.Student
	for _, s := range m.students {
		result = append(result, s)
	}
	return result, nil
}

func (m *studentRepoMock) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &s, nil
}

type enrollmentRepoMock struct {
	enrollments []models.Enrollment
	courseItems []models.CourseListItem
	lastStatus  models.EnrollmentStatus
}

func (m *enrollmentRepoMock) ListByStudent(ctx context.Context, studentID int64, status models.EnrollmentStatus) ([]models.Enrollment, error) {
	m.lastStatus = status
	return m.enrollments, nil
}

func (m *enrollmentRepoMock) ActiveCourseItems(ctx context.Context, studentID int64) ([]models.CourseListItem, error) {
	return m.courseItems, nil
}

func TestStudentServiceGetNotFound(t *testing.T) {
	svc := NewStudentService(&studentRepoMock{students: map[int64]models.Student{}}, &enrollmentRepoMock{})

	_, err := svc.Get(context.Background(), 42)
	appErr := asAppError(t, err)
	assert.Equal(t, "STUDENT_NOT_FOUND", appErr.Code)
}

func TestStudentServiceEnrollmentsInvalidStatus(t *testing.T) {
	repo := &studentRepoMock{students: map[int64]models.Student{1: {ID: 1}}}
	svc := NewStudentService(repo, &enrollmentRepoMock{})

	_, err := svc.Enrollments(context.Background(), 1, "PENDING")
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestStudentServiceEnrollmentsStatusPassthrough(t *testing.T) {
	repo := &studentRepoMock{students: map[int64]models.Student{1: {ID: 1}}}
	enrollRepo := &enrollmentRepoMock{enrollments: []models.Enrollment{{ID: 1}}}
	svc := NewStudentService(repo, enrollRepo)

	// The filter is case-insensitive.
	result, err := svc.Enrollments(context.Background(), 1, "cancelled")
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, models.EnrollmentStatusCancelled, enrollRepo.lastStatus)
}

func TestStudentServiceScheduleSumsCredits(t *testing.T) {
	schedule := "MON 09:00-10:30"
	repo := &studentRepoMock{students: map[int64]models.Student{1: {ID: 1, Name: "Ada"}}}
	enrollRepo := &enrollmentRepoMock{courseItems: []models.CourseListItem{
		{ID: 10, Credits: 3, Schedule: &schedule},
		{ID: 11, Credits: 4},
	}}
	svc := NewStudentService(repo, enrollRepo)

	result, err := svc.Schedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.StudentName)
	assert.Equal(t, 7, result.TotalCredits)
	assert.Len(t, result.Courses, 2)
}
