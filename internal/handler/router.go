package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskit/enrollment-api/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Health      *HealthHandler
	Students    *StudentHandler
	Courses     *CourseHandler
	Professors  *ProfessorHandler
	Enrollments *EnrollmentHandler
	Metrics     *service.MetricsService
}

// Register attaches all routes. Health and metrics live at the root; the
// domain surface sits under the API prefix.
func Register(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", h.Health.Check)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	api := r.Group(prefix)
	{
		api.GET("/students", h.Students.List)
		api.GET("/students/:id", h.Students.Get)
		api.GET("/students/:id/enrollments", h.Students.Enrollments)
		api.GET("/students/:id/schedule", h.Students.Schedule)
		api.POST("/students/:id/enrollments", h.Enrollments.Enroll)
		api.DELETE("/students/:id/enrollments/:enrollmentId", h.Enrollments.Cancel)

		api.GET("/courses", h.Courses.List)
		api.GET("/courses/:id", h.Courses.Get)

		api.GET("/professors", h.Professors.List)
	}
}
