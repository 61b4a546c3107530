package pgsql

import (
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ScanEntryRepo: newPgxScanEntryRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		StaffRepo:     newPgxStaffRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
	}
}
