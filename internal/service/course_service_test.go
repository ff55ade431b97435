package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/internal/repository"
)

type courseRepoMock struct {
	items     []models.CourseListItem
	listCalls int
}

func (m *courseRepoMock) List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error) {
	m.listCalls++
	return m.items, nil
}

func (m *courseRepoMock) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	return &models.Course{ID: id}, nil
}

type cacheMock struct {
	entries map[string][]byte
	deleted []string
}

func newCacheMock() *cacheMock {
	return &cacheMock{entries: make(map[string][]byte)}
}

func (m *cacheMock) Get(ctx context.Context, key string, dest interface{}) error {
	if _, ok := m.entries[key]; !ok {
		return repository.ErrCacheMiss
	}
	// A sentinel item marks a cache hit for the assertions.
	*dest.(*[]models.CourseListItem) = []models.CourseListItem{{ID: 999}}
	return nil
}

func (m *cacheMock) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = []byte("set")
	return nil
}

func (m *cacheMock) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	m.entries = make(map[string][]byte)
	return nil
}

func TestCourseServiceListCachesResult(t *testing.T) {
	repo := &courseRepoMock{items: []models.CourseListItem{{ID: 10}}}
	cache := newCacheMock()
	svc := NewCourseService(repo, cache, time.Minute, nil)

	first, err := svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), first[0].ID)
	assert.Equal(t, 1, repo.listCalls)

	// Second call is served from cache.
	second, err := svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(999), second[0].ID)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCourseServiceCacheKeyVariesByFilter(t *testing.T) {
	repo := &courseRepoMock{items: []models.CourseListItem{{ID: 10}}}
	cache := newCacheMock()
	svc := NewCourseService(repo, cache, time.Minute, nil)

	dept := int64(3)
	_, err := svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), &dept, 0, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, cache.entries, 2)
}

func TestCourseServiceInvalidate(t *testing.T) {
	repo := &courseRepoMock{items: []models.CourseListItem{{ID: 10}}}
	cache := newCacheMock()
	svc := NewCourseService(repo, cache, time.Minute, nil)

	_, err := svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)

	svc.InvalidateCourses(context.Background())
	require.Len(t, cache.deleted, 1)
	assert.Equal(t, repository.CourseCachePattern, cache.deleted[0])

	// Invalidation forces the next read back to the repository.
	_, err = svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCourseServiceListWithoutCache(t *testing.T) {
	repo := &courseRepoMock{items: []models.CourseListItem{{ID: 10}}}
	svc := NewCourseService(repo, nil, time.Minute, nil)

	items, err := svc.List(context.Background(), nil, 0, 100)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
