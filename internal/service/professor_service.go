package service

import (
	"context"

	"github.com/campuskit/enrollment-api/internal/models"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

type professorRepository interface {
	List(ctx context.Context, skip, limit int) ([]models.Professor, error)
}

// ProfessorService serves professor listings.
type ProfessorService struct {
	professors professorRepository
}

// NewProfessorService constructs the service.
func NewProfessorService(professors professorRepository) *ProfessorService {
	return &ProfessorService{professors: professors}
}

// List returns a page of professors.
func (s *ProfessorService) List(ctx context.Context, skip, limit int) ([]models.Professor, error) {
	professors, err := s.professors.List(ctx, skip, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to list professors")
	}
	return professors, nil
}
