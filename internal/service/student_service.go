package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/campuskit/enrollment-api/internal/models"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, skip, limit int) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

type enrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID int64, status models.EnrollmentStatus) ([]models.Enrollment, error)
	ActiveCourseItems(ctx context.Context, studentID int64) ([]models.CourseListItem, error)
}

// StudentService serves student listings, enrollment history and the
// weekly timetable projection.
type StudentService struct {
	students    studentRepository
	enrollments enrollmentRepository
}

// NewStudentService constructs the service.
func NewStudentService(students studentRepository, enrollments enrollmentRepository) *StudentService {
	return &StudentService{students: students, enrollments: enrollments}
}

// List returns a page of students.
func (s *StudentService) List(ctx context.Context, skip, limit int) ([]models.Student, error) {
	students, err := s.students.List(ctx, skip, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.StudentNotFound(id)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load student")
	}
	return student, nil
}

// Enrollments returns a student's enrollment history, optionally filtered
// by status.
func (s *StudentService) Enrollments(ctx context.Context, studentID int64, status string) ([]models.Enrollment, error) {
	if _, err := s.Get(ctx, studentID); err != nil {
		return nil, err
	}

	filter := models.EnrollmentStatus(strings.ToUpper(status))
	if status != "" && !filter.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid enrollment status: %s", status))
	}

	enrollments, err := s.enrollments.ListByStudent(ctx, studentID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to list enrollments")
	}
	return enrollments, nil
}

// Schedule returns the student's weekly timetable with the credit total.
func (s *StudentService) Schedule(ctx context.Context, studentID int64) (*models.StudentSchedule, error) {
	student, err := s.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	courses, err := s.enrollments.ActiveCourseItems(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load schedule")
	}

	total := 0
	for _, course := range courses {
		total += course.Credits
	}

	return &models.StudentSchedule{
		StudentID:    student.ID,
		StudentName:  student.Name,
		TotalCredits: total,
		Courses:      courses,
	}, nil
}
