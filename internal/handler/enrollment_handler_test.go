package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/internal/service"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

type enrollmentEngineMock struct {
	enrollResp    *models.Enrollment
	enrollErr     error
	cancelResp    *models.Enrollment
	cancelErr     error
	lastStudentID int64
	lastCourseID  int64
	enrollCalled  bool
	cancelCalled  bool
}

func (m *enrollmentEngineMock) Enroll(ctx context.Context, studentID int64, req service.EnrollRequest) (*models.Enrollment, error) {
	m.enrollCalled = true
	m.lastStudentID = studentID
	m.lastCourseID = req.CourseID
	return m.enrollResp, m.enrollErr
}

func (m *enrollmentEngineMock) Cancel(ctx context.Context, studentID, enrollmentID int64) (*models.Enrollment, error) {
	m.cancelCalled = true
	m.lastStudentID = studentID
	return m.cancelResp, m.cancelErr
}

func TestEnrollmentHandlerEnroll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentEngineMock{
		enrollResp: &models.Enrollment{ID: 7, StudentID: 1, CourseID: 10, Status: models.EnrollmentStatusEnrolled},
	}
	handler := NewEnrollmentHandler(mockSvc)

	payload, _ := json.Marshal(service.EnrollRequest{CourseID: 10})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/students/1/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Enroll(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.enrollCalled)
	assert.Equal(t, int64(1), mockSvc.lastStudentID)
	assert.Equal(t, int64(10), mockSvc.lastCourseID)

	var body models.Enrollment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
}

func TestEnrollmentHandlerEnrollInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnrollmentHandler(&enrollmentEngineMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/students/1/enrollments", bytes.NewBufferString(`{"course_id":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Enroll(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrollmentHandlerEnrollBadStudentID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentEngineMock{}
	handler := NewEnrollmentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/students/abc/enrollments", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Enroll(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.enrollCalled)
}

func TestEnrollmentHandlerEnrollCapacityError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentEngineMock{enrollErr: appErrors.CapacityExceeded(30, 30)}
	handler := NewEnrollmentHandler(mockSvc)

	payload, _ := json.Marshal(service.EnrollRequest{CourseID: 10})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/students/1/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Enroll(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CAPACITY_EXCEEDED", body["code"])
	assert.Equal(t, float64(30), body["capacity"])
	assert.Equal(t, float64(30), body["enrolled"])
}

func TestEnrollmentHandlerCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentEngineMock{
		cancelResp: &models.Enrollment{ID: 7, StudentID: 1, CourseID: 10, Status: models.EnrollmentStatusCancelled},
	}
	handler := NewEnrollmentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/students/1/enrollments/7", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "enrollmentId", Value: "7"}}

	handler.Cancel(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.cancelCalled)
}

func TestEnrollmentHandlerCancelNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &enrollmentEngineMock{cancelErr: appErrors.EnrollmentNotFound(7)}
	handler := NewEnrollmentHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/students/1/enrollments/7", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "enrollmentId", Value: "7"}}

	handler.Cancel(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ENROLLMENT_NOT_FOUND", body["code"])
}
