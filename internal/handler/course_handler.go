package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/enrollment-api/internal/models"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
	"github.com/campuskit/enrollment-api/pkg/response"
)

// CourseQueryService is the read surface the course endpoints need.
type CourseQueryService interface {
	List(ctx context.Context, departmentID *int64, skip, limit int) ([]models.CourseListItem, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses CourseQueryService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses CourseQueryService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses with schedules
// @Tags Courses
// @Produce json
// @Param department_id query int false "Filter by department"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 1000)"
// @Success 200 {array} models.CourseListItem
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var departmentID *int64
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "department_id must be a positive integer"))
			return
		}
		departmentID = &id
	}

	courses, err := h.courses.List(c.Request.Context(), departmentID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Get course detail
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}
