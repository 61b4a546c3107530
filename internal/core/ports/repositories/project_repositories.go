package repositories

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by ID. Returns apperrors.ErrNotFound if absent.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectsByIDs retrieves the projects that exist among projectIDs, keyed by ID.
	FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error)

	// ListProjects retrieves projects ordered by name.
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject inserts a project or updates the existing record with the same ID.
	SaveProject(ctx context.Context, project domain.Project) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
