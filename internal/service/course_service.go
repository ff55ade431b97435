package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/internal/repository"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

type courseCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CourseService serves course listings, backed by a short-lived Redis
// cache since enrolled counts change under load.
type CourseService struct {
	courses courseRepository
	cache   courseCache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCourseService constructs the service. cache may be nil.
func NewCourseService(courses courseRepository, cache courseCache, ttl time.Duration, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, cache: cache, ttl: ttl, logger: logger}
}

// List returns a page of courses with schedules, optionally filtered by
// department. Cache failures degrade to the database.
func (s *CourseService) List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error) {
	key := s.cacheKey(departmentID, skip, limit)

	if s.cache != nil {
		var cached []models.CourseListItem
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("course cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	courses, err := s.courses.List(ctx, departmentID, skip, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to list courses")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, courses, s.ttl); err != nil {
			s.logger.Warn("course cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return courses, nil
}

// Get returns one course.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.CourseNotFound(id)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load course")
	}
	return course, nil
}

// InvalidateCourses drops every cached course listing. The enrollment
// engine calls this after each successful mutation.
func (s *CourseService) InvalidateCourses(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, repository.CourseCachePattern); err != nil {
		s.logger.Warn("course cache invalidation failed", zap.Error(err))
	}
}

func (s *CourseService) cacheKey(departmentID *int64, skip, limit int) string {
	dept := "all"
	if departmentID != nil {
		dept = fmt.Sprintf("%d", *departmentID)
	}
	return fmt.Sprintf("courses:d%s:s%d:l%d", dept, skip, limit)
}
