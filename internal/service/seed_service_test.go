package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/pkg/config"
)

type seedSink struct {
	ensured     bool
	cleared     bool
	departments []models.Department
	professors  []models.Professor
	courses     []models.Course
	schedules   []models.Schedule
	students    []models.Student
	nextDeptID  int64
	nextCourse  int64
}

func (s *seedSink) Ensure(ctx context.Context) error   { s.ensured = true; return nil }
func (s *seedSink) ClearAll(ctx context.Context) error { s.cleared = true; return nil }

func (s *seedSink) Insert(ctx context.Context, dept *models.Department) error {
	s.nextDeptID++
	dept.ID = s.nextDeptID
	s.departments = append(s.departments, *dept)
	return nil
}

func (s *seedSink) InsertBatch(ctx context.Context, professors []models.Professor) error {
	for i := range professors {
		professors[i].ID = int64(len(s.professors) + 1)
		s.professors = append(s.professors, professors[i])
	}
	return nil
}

func (s *seedSink) ListAll(ctx context.Context) ([]models.Professor, error) {
	return s.professors, nil
}

type courseSink struct{ sink *seedSink }

func (c courseSink) InsertBatch(ctx context.Context, courses []models.Course) error {
	for i := range courses {
		c.sink.nextCourse++
		courses[i].ID = c.sink.nextCourse
		c.sink.courses = append(c.sink.courses, courses[i])
	}
	return nil
}

func (c courseSink) ListAll(ctx context.Context) ([]models.Course, error) {
	return c.sink.courses, nil
}

type scheduleSink struct{ sink *seedSink }

func (s scheduleSink) InsertBatch(ctx context.Context, schedules []models.Schedule) error {
	s.sink.schedules = append(s.sink.schedules, schedules...)
	return nil
}

type studentSink struct{ sink *seedSink }

func (s studentSink) InsertBatch(ctx context.Context, students []models.Student) error {
	s.sink.students = append(s.sink.students, students...)
	return nil
}

func TestSeedServiceRun(t *testing.T) {
	sink := &seedSink{}
	cfg := config.SeedConfig{Enabled: true, Departments: 10, Professors: 20, Courses: 50, Students: 100}
	svc := NewSeedService(sink, sink, sink, courseSink{sink}, scheduleSink{sink}, studentSink{sink}, cfg, nil)

	require.NoError(t, svc.Run(context.Background()))

	assert.True(t, sink.ensured)
	assert.True(t, sink.cleared)
	assert.Len(t, sink.departments, 10)
	assert.Len(t, sink.professors, 20)
	assert.Len(t, sink.courses, 50)
	assert.Len(t, sink.schedules, 50)
	assert.Len(t, sink.students, 100)

	for _, course := range sink.courses {
		assert.GreaterOrEqual(t, course.Credits, 1)
		assert.LessOrEqual(t, course.Credits, 4)
		assert.GreaterOrEqual(t, course.Capacity, 20)
		assert.LessOrEqual(t, course.Capacity, 50)
		assert.Zero(t, course.Enrolled)
	}

	for _, schedule := range sink.schedules {
		assert.True(t, schedule.DayOfWeek.Valid())
		assert.Equal(t, models.MinuteOfDay(90), schedule.EndTime-schedule.StartTime)
		assert.GreaterOrEqual(t, schedule.StartTime, models.ClockTime(8, 0))
		assert.LessOrEqual(t, schedule.StartTime, models.ClockTime(16, 0))
	}

	assert.Equal(t, "2024000001", sink.students[0].StudentID)
	assert.True(t, strings.HasSuffix(sink.professors[0].Email, "@university.edu"))
}
