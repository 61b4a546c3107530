package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectReader
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo portsrepo.ProjectReader) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProjectByID(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("project", projectID)
		}
		s.LogError(ctx, err, "Failed to get project", slog.String("project_id", projectID))
		return nil, apperrors.NewAppError(500, "failed to get project", err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, actor domain.Actor, activeOnly bool) ([]domain.Project, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListProjects(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, apperrors.NewAppError(500, "failed to list projects", err)
	}
	return projects, nil
}
