package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/internal/service"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
	"github.com/campuskit/enrollment-api/pkg/response"
)

// EnrollmentEngine is the mutating surface the enrollment endpoints need.
type EnrollmentEngine interface {
	Enroll(ctx context.Context, studentID int64, req service.EnrollRequest) (*models.Enrollment, error)
	Cancel(ctx context.Context, studentID, enrollmentID int64) (*models.Enrollment, error)
}

// EnrollmentHandler exposes the enroll and cancel endpoints.
type EnrollmentHandler struct {
	engine EnrollmentEngine
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(engine EnrollmentEngine) *EnrollmentHandler {
	return &EnrollmentHandler{engine: engine}
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body service.EnrollRequest true "Enrollment payload"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Failure 409 {object} errors.Error
// @Router /students/{id}/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	studentID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	enrollment, err := h.engine.Enroll(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Cancel godoc
// @Summary Cancel an enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Student ID"
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} errors.Error
// @Router /students/{id}/enrollments/{enrollmentId} [delete]
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	studentID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	enrollmentID, err := pathID(c, "enrollmentId")
	if err != nil {
		response.Error(c, err)
		return
	}

	enrollment, err := h.engine.Cancel(c.Request.Context(), studentID, enrollmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment)
}
