package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/scan_payroll_app/internal/models"
	"github.com/SscSPs/scan_payroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, staff_id, amount, payment_date, payment_mode, transaction_id,
		account_no, ifsc_code, bank_name, remarks, status,
		created_at, created_by, last_updated_at, last_updated_by, version`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var m models.Payment
		err := row.Scan(
			&m.PaymentID,
			&m.StaffID,
			&m.Amount,
			&m.PaymentDate,
			&m.PaymentMode,
			&m.TransactionID,
			&m.AccountNo,
			&m.IFSCCode,
			&m.BankName,
			&m.Remarks,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.Version,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.StaffID,
		m.Amount,
		m.PaymentDate,
		m.PaymentMode,
		m.TransactionID,
		m.AccountNo,
		m.IFSCCode,
		m.BankName,
		m.Remarks,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *PgxPaymentRepository) ListPaymentsByStaff(ctx context.Context, staffID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE staff_id = $1 ORDER BY payment_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for staff %s: %w", staffID, err)
	}
	defer rows.Close()
	return collectPayments(rows)
}
