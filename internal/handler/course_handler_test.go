package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/enrollment-api/internal/models"
)

type courseServiceMock struct {
	listResp []models.CourseListItem
	listErr  error
	getResp  *models.Course
	getErr   error
	lastDept *int64
}

func (m *courseServiceMock) List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error) {
	m.lastDept = departmentID
	return m.listResp, m.listErr
}

func (m *courseServiceMock) Get(ctx context.Context, id int64) (*models.Course, error) {
	return m.getResp, m.getErr
}

func TestCourseHandlerListDepartmentFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &courseServiceMock{listResp: []models.CourseListItem{}}
	handler := NewCourseHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses?department_id=3", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockSvc.lastDept)
	assert.Equal(t, int64(3), *mockSvc.lastDept)
}

func TestCourseHandlerListBadDepartment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&courseServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses?department_id=zero", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &courseServiceMock{getResp: &models.Course{ID: 10, Code: "CS101", Capacity: 30, Enrolled: 12}}
	handler := NewCourseHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/courses/10", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
}
