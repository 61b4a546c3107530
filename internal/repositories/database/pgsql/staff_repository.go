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

const staffColumns = `staff_id, name, mobile, employee_id, scanner_id, pan_number, bank_account_no, bank_ifsc_code,
		address, center, project_id, status, role, password_hash,
		created_at, created_by, last_updated_at, last_updated_by, version`

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepositoryFacade
var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

func scanStaff(row pgx.Row) (models.Staff, error) {
	var m models.Staff
	err := row.Scan(
		&m.StaffID,
		&m.Name,
		&m.Mobile,
		&m.EmployeeID,
		&m.ScannerID,
		&m.PANNumber,
		&m.BankAccountNo,
		&m.BankIFSCCode,
		&m.Address,
		&m.Center,
		&m.ProjectID,
		&m.Status,
		&m.Role,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	m := mapping.ToModelStaff(staff)
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (staff_id) DO UPDATE SET
			name = EXCLUDED.name,
			mobile = EXCLUDED.mobile,
			employee_id = EXCLUDED.employee_id,
			scanner_id = EXCLUDED.scanner_id,
			pan_number = EXCLUDED.pan_number,
			bank_account_no = EXCLUDED.bank_account_no,
			bank_ifsc_code = EXCLUDED.bank_ifsc_code,
			address = EXCLUDED.address,
			center = EXCLUDED.center,
			project_id = EXCLUDED.project_id,
			status = EXCLUDED.status,
			role = EXCLUDED.role,
			password_hash = EXCLUDED.password_hash,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by,
			version = staff.version + 1;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StaffID,
		m.Name,
		m.Mobile,
		m.EmployeeID,
		m.ScannerID,
		m.PANNumber,
		m.BankAccountNo,
		m.BankIFSCCode,
		m.Address,
		m.Center,
		m.ProjectID,
		m.Status,
		m.Role,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: staff with mobile %s already exists", apperrors.ErrDuplicate, m.Mobile)
		}
		return fmt.Errorf("failed to save staff %s: %w", m.StaffID, err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`
	m, err := scanStaff(r.Pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff by ID %s: %w", staffID, err)
	}
	d := mapping.ToDomainStaff(m)
	return &d, nil
}

func (r *PgxStaffRepository) FindStaffByMobile(ctx context.Context, mobile string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE mobile = $1;`
	m, err := scanStaff(r.Pool.QueryRow(ctx, query, mobile))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff by mobile: %w", err)
	}
	d := mapping.ToDomainStaff(m)
	return &d, nil
}

func (r *PgxStaffRepository) FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	result := make(map[string]domain.Staff, len(staffIDs))
	if len(staffIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff by IDs: %w", err)
	}
	defer rows.Close()

	modelStaff, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Staff, error) {
		return scanStaff(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan staff rows: %w", err)
	}
	for _, m := range modelStaff {
		result[m.StaffID] = mapping.ToDomainStaff(m)
	}
	return result, nil
}
