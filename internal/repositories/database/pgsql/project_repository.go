package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/scan_payroll_app/internal/models"
	"github.com/SscSPs/scan_payroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `project_id, name, center, scan_rate, productivity_limit, is_active,
		created_at, created_by, last_updated_at, last_updated_by, version`

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.Name,
		&m.Center,
		&m.ScanRate,
		&m.ProductivityLimit,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (project_id) DO UPDATE SET
			name = EXCLUDED.name,
			center = EXCLUDED.center,
			scan_rate = EXCLUDED.scan_rate,
			productivity_limit = EXCLUDED.productivity_limit,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by,
			version = projects.version + 1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.Center,
		m.ScanRate,
		m.ProductivityLimit,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project named %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	d := mapping.ToDomainProject(m)
	return &d, nil
}

func (r *PgxProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error) {
	result := make(map[string]domain.Project, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by IDs: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan project rows: %w", err)
	}
	for _, m := range modelProjects {
		result[m.ProjectID] = mapping.ToDomainProject(m)
	}
	return result, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1::boolean = false OR is_active = true)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan project rows: %w", err)
	}
	return mapping.ToDomainProjectSlice(modelProjects), nil
}
