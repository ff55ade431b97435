package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/pkg/response"
)

// StudentQueryService is the read surface the student endpoints need.
type StudentQueryService interface {
	List(ctx context.Context, skip, limit int) ([]models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Enrollments(ctx context.Context, studentID int64, status string) ([]models.Enrollment, error)
	Schedule(ctx context.Context, studentID int64) (*models.StudentSchedule, error)
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students StudentQueryService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students StudentQueryService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 1000)"
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	students, err := h.students.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// @Summary Get student detail
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Enrollments godoc
// @Summary List a student's enrollments
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Param status query string false "Filter by status (ENROLLED or CANCELLED)"
// @Success 200 {array} models.Enrollment
// @Router /students/{id}/enrollments [get]
func (h *StudentHandler) Enrollments(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	enrollments, err := h.students.Enrollments(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollments)
}

// Schedule godoc
// @Summary Get a student's weekly timetable
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentSchedule
// @Router /students/{id}/schedule [get]
func (h *StudentHandler) Schedule(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	schedule, err := h.students.Schedule(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule)
}
