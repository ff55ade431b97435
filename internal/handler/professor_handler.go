package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/pkg/response"
)

// ProfessorQueryService is the read surface the professor endpoints need.
type ProfessorQueryService interface {
	List(ctx context.Context, skip, limit int) ([]models.Professor, error)
}

// ProfessorHandler exposes professor endpoints.
type ProfessorHandler struct {
	professors ProfessorQueryService
}

// NewProfessorHandler constructs ProfessorHandler.
func NewProfessorHandler(professors ProfessorQueryService) *ProfessorHandler {
	return &ProfessorHandler{professors: professors}
}

// List godoc
// @Summary List professors
// @Tags Professors
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 1000)"
// @Success 200 {array} models.Professor
// @Router /professors [get]
func (h *ProfessorHandler) List(c *gin.Context) {
	skip, limit, err := pageParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	professors, err := h.professors.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professors)
}
