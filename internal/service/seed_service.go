package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/pkg/config"
)

type schemaRepository interface {
	Ensure(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type departmentSeeder interface {
	Insert(ctx context.Context, dept *models.Department) error
}

type professorSeeder interface {
	InsertBatch(ctx context.Context, professors []models.Professor) error
	ListAll(ctx context.Context) ([]models.Professor, error)
}

type courseSeeder interface {
	InsertBatch(ctx context.Context, courses []models.Course) error
	ListAll(ctx context.Context) ([]models.Course, error)
}

type scheduleSeeder interface {
	InsertBatch(ctx context.Context, schedules []models.Schedule) error
}

type studentSeeder interface {
	InsertBatch(ctx context.Context, students []models.Student) error
}

var departmentNames = []struct {
	name string
	code string
}{
	{"Computer Science", "CS"},
	{"Electrical Engineering", "EE"},
	{"Mechanical Engineering", "ME"},
	{"Chemical Engineering", "CHE"},
	{"Physics", "PHY"},
	{"Mathematics", "MATH"},
	{"Statistics", "STAT"},
	{"Business Administration", "BUS"},
	{"Economics", "ECON"},
	{"Law", "LAW"},
}

// SeedService creates the schema and fills an empty database with
// generated departments, professors, courses, schedules and students.
type SeedService struct {
	schema      schemaRepository
	departments departmentSeeder
	professors  professorSeeder
	courses     courseSeeder
	schedules   scheduleSeeder
	students    studentSeeder
	cfg         config.SeedConfig
	logger      *zap.Logger
	rng         *rand.Rand
}

// NewSeedService constructs the bootstrap service.
func NewSeedService(schema schemaRepository, departments departmentSeeder, professors professorSeeder, courses courseSeeder, schedules scheduleSeeder, students studentSeeder, cfg config.SeedConfig, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{
		schema:      schema,
		departments: departments,
		professors:  professors,
		courses:     courses,
		schedules:   schedules,
		students:    students,
		cfg:         cfg,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run creates the schema if absent, clears every row and regenerates the
// sample data set. Disabled entirely via SEED_ON_START=false.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.schema.Ensure(ctx); err != nil {
		return err
	}
	if err := s.schema.ClearAll(ctx); err != nil {
		return err
	}

	started := time.Now()
	depts, err := s.seedDepartments(ctx)
	if err != nil {
		return err
	}
	if err := s.seedProfessors(ctx, depts); err != nil {
		return err
	}
	professors, err := s.professors.ListAll(ctx)
	if err != nil {
		return err
	}
	if err := s.seedCourses(ctx, depts, professors); err != nil {
		return err
	}
	if err := s.seedSchedules(ctx); err != nil {
		return err
	}
	if err := s.seedStudents(ctx, depts); err != nil {
		return err
	}

	s.logger.Info("database seeded",
		zap.Int("departments", s.cfg.Departments),
		zap.Int("professors", s.cfg.Professors),
		zap.Int("courses", s.cfg.Courses),
		zap.Int("students", s.cfg.Students),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

func (s *SeedService) seedDepartments(ctx context.Context) ([]models.Department, error) {
	depts := make([]models.Department, 0, s.cfg.Departments)
	for i := 0; i < s.cfg.Departments; i++ {
		entry := departmentNames[i%len(departmentNames)]
		name := entry.name
		if i >= len(departmentNames) {
			name = fmt.Sprintf("%s %d", entry.name, i/len(departmentNames)+1)
		}
		dept := models.Department{Name: name}
		if err := s.departments.Insert(ctx, &dept); err != nil {
			return nil, err
		}
		depts = append(depts, dept)
	}
	return depts, nil
}

func (s *SeedService) seedProfessors(ctx context.Context, depts []models.Department) error {
	professors := make([]models.Professor, 0, s.cfg.Professors)
	for i := 0; i < s.cfg.Professors; i++ {
		professors = append(professors, models.Professor{
			Name:         fmt.Sprintf("Professor %03d", i+1),
			Email:        fmt.Sprintf("prof%03d@university.edu", i+1),
			DepartmentID: depts[i%len(depts)].ID,
		})
	}
	return s.professors.InsertBatch(ctx, professors)
}

func (s *SeedService) seedCourses(ctx context.Context, depts []models.Department, professors []models.Professor) error {
	byDept := make(map[int64][]models.Professor, len(depts))
	for _, prof := range professors {
		byDept[prof.DepartmentID] = append(byDept[prof.DepartmentID], prof)
	}

	courses := make([]models.Course, 0, s.cfg.Courses)
	for i := 0; i < s.cfg.Courses; i++ {
		dept := depts[i%len(depts)]
		code := departmentNames[(i%len(depts))%len(departmentNames)].code
		deptProfs := byDept[dept.ID]
		if len(deptProfs) == 0 {
			deptProfs = professors
		}
		courses = append(courses, models.Course{
			Code:         fmt.Sprintf("%s%d", code, 100+i),
			Name:         fmt.Sprintf("%s %d", dept.Name, 100+i/len(depts)),
			Credits:      1 + s.rng.Intn(4),
			Capacity:     20 + s.rng.Intn(31),
			Enrolled:     0,
			ProfessorID:  deptProfs[s.rng.Intn(len(deptProfs))].ID,
			DepartmentID: dept.ID,
		})
	}
	return s.courses.InsertBatch(ctx, courses)
}

// seedSchedules gives every course one 90-minute weekday slot starting on
// the hour between 08:00 and 16:00.
func (s *SeedService) seedSchedules(ctx context.Context) error {
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return err
	}

	schedules := make([]models.Schedule, 0, len(courses))
	for _, course := range courses {
		start := models.ClockTime(8+s.rng.Intn(9), 0)
		schedules = append(schedules, models.Schedule{
			CourseID:  course.ID,
			DayOfWeek: models.Weekdays[s.rng.Intn(len(models.Weekdays))],
			StartTime: start,
			EndTime:   start + 90,
		})
	}
	return s.schedules.InsertBatch(ctx, schedules)
}

func (s *SeedService) seedStudents(ctx context.Context, depts []models.Department) error {
	students := make([]models.Student, 0, s.cfg.Students)
	for i := 0; i < s.cfg.Students; i++ {
		students = append(students, models.Student{
			StudentID:    fmt.Sprintf("2024%06d", i+1),
			Name:         fmt.Sprintf("Student %06d", i+1),
			Email:        fmt.Sprintf("student%06d@university.edu", i+1),
			DepartmentID: depts[s.rng.Intn(len(depts))].ID,
		})
	}
	return s.students.InsertBatch(ctx, students)
}
