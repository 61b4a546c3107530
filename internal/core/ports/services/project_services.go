package services

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// ProjectSvcFacade defines the read-only project lookups. Any active actor may call them.
type ProjectSvcFacade interface {
	GetProjectByID(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, actor domain.Actor, activeOnly bool) ([]domain.Project, error)
}
