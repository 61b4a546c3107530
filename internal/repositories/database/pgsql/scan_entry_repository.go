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

const scanEntryColumns = `entry_id, operator_id, project_id, scans, entry_date, status, approvals,
		created_at, created_by, last_updated_at, last_updated_by, version`

const insertAuditQuery = `
	INSERT INTO scan_entry_audit_log (entry_id, seq, action, actor_id, ts, details, status_before, status_after)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

type PgxScanEntryRepository struct {
	BaseRepository
}

// newPgxScanEntryRepository creates a repository for scan entries and their audit log.
func newPgxScanEntryRepository(pool *pgxpool.Pool) portsrepo.ScanEntryRepositoryFacade {
	return &PgxScanEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxScanEntryRepository implements portsrepo.ScanEntryRepositoryFacade
var _ portsrepo.ScanEntryRepositoryFacade = (*PgxScanEntryRepository)(nil)

func scanScanEntry(row pgx.Row) (models.ScanEntry, error) {
	var m models.ScanEntry
	err := row.Scan(
		&m.EntryID,
		&m.OperatorID,
		&m.ProjectID,
		&m.Scans,
		&m.EntryDate,
		&m.Status,
		&m.Approvals,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

func queueAuditRows(batch *pgx.Batch, rows []models.AuditRecord) {
	for _, a := range rows {
		batch.Queue(insertAuditQuery,
			a.EntryID,
			a.Seq,
			a.Action,
			a.ActorID,
			a.Timestamp,
			a.Details,
			a.StatusBefore,
			a.StatusAfter,
		)
	}
}

// SaveScanEntry inserts the entry row and its initial audit trail within a DB transaction.
func (r *PgxScanEntryRepository) SaveScanEntry(ctx context.Context, entry domain.ScanEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelScanEntry(entry)
	query := `INSERT INTO scan_entries (` + scanEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.OperatorID,
		m.ProjectID,
		m.Scans,
		m.EntryDate,
		m.Status,
		m.Approvals,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: scan entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return apperrors.NewAppError(500, "failed to insert scan entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueAuditRows(batch, mapping.ToModelAuditRecords(m.EntryID, entry.AuditTrail, "", entry.Status))
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert audit trail for scan entry "+m.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateScanEntry locks the stored row, checks its version and writes the new
// status, approvals and unseen audit records in one transaction.
func (r *PgxScanEntryRepository) UpdateScanEntry(ctx context.Context, entry domain.ScanEntry, expectedVersion int) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var storedStatus string
	var storedVersion int
	err = tx.QueryRow(ctx,
		`SELECT status, version FROM scan_entries WHERE entry_id = $1 FOR UPDATE;`,
		entry.EntryID,
	).Scan(&storedStatus, &storedVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock scan entry "+entry.EntryID, err)
	}
	if storedVersion != expectedVersion {
		return fmt.Errorf("%w: scan entry %s is at version %d, expected %d",
			apperrors.ErrConflict, entry.EntryID, storedVersion, expectedVersion)
	}

	var lastSeq int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM scan_entry_audit_log WHERE entry_id = $1;`,
		entry.EntryID,
	).Scan(&lastSeq)
	if err != nil {
		return apperrors.NewAppError(500, "failed to read audit trail of scan entry "+entry.EntryID, err)
	}

	m := mapping.ToModelScanEntry(entry)
	_, err = tx.Exec(ctx, `
		UPDATE scan_entries
		SET status = $1, approvals = $2, last_updated_at = $3, last_updated_by = $4, version = $5
		WHERE entry_id = $6 AND version = $7;
	`,
		m.Status,
		m.Approvals,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedVersion+1,
		m.EntryID,
		expectedVersion,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update scan entry "+m.EntryID, err)
	}

	var unseen []domain.AuditRecord
	for _, rec := range entry.AuditTrail {
		if rec.Seq > lastSeq {
			unseen = append(unseen, rec)
		}
	}
	if len(unseen) > 0 {
		batch := &pgx.Batch{}
		queueAuditRows(batch, mapping.ToModelAuditRecords(m.EntryID, unseen, domain.EntryStatus(storedStatus), entry.Status))
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to append audit trail for scan entry "+m.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindScanEntryByID reads the entry row and its audit trail from one
// repeatable-read snapshot, like listEntries.
func (r *PgxScanEntryRepository) FindScanEntryByID(ctx context.Context, entryID string) (*domain.ScanEntry, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin read transaction", err)
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + scanEntryColumns + ` FROM scan_entries WHERE entry_id = $1;`
	m, err := scanScanEntry(tx.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find scan entry %s: %w", entryID, err)
	}

	trails, err := queryAuditTrails(ctx, tx, []string{entryID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainScanEntry(m, trails[entryID])
	return &d, nil
}

func (r *PgxScanEntryRepository) ListScanEntriesByStatuses(ctx context.Context, statuses []domain.EntryStatus) ([]domain.ScanEntry, error) {
	if len(statuses) == 0 {
		return []domain.ScanEntry{}, nil
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	query := `SELECT ` + scanEntryColumns + ` FROM scan_entries WHERE status = ANY($1) ORDER BY entry_date DESC, created_at DESC;`
	return r.listEntries(ctx, query, values)
}

func (r *PgxScanEntryRepository) ListUnlockedScanEntries(ctx context.Context) ([]domain.ScanEntry, error) {
	query := `SELECT ` + scanEntryColumns + ` FROM scan_entries WHERE status <> $1 ORDER BY entry_date DESC, created_at DESC;`
	return r.listEntries(ctx, query, string(domain.StatusLocked))
}

func (r *PgxScanEntryRepository) ListScanEntriesByOperator(ctx context.Context, operatorID string) ([]domain.ScanEntry, error) {
	query := `SELECT ` + scanEntryColumns + ` FROM scan_entries WHERE operator_id = $1 ORDER BY entry_date DESC, created_at DESC;`
	return r.listEntries(ctx, query, operatorID)
}

// listEntries runs an entry query inside a repeatable-read transaction so the
// entries and their audit rows come from the same snapshot.
func (r *PgxScanEntryRepository) listEntries(ctx context.Context, query string, args ...any) ([]domain.ScanEntry, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin read transaction", err)
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan entries: %w", err)
	}
	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ScanEntry, error) {
		return scanScanEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan scan entry rows: %w", err)
	}

	ids := make([]string, len(modelEntries))
	for i, m := range modelEntries {
		ids[i] = m.EntryID
	}
	trails, err := queryAuditTrails(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ScanEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainScanEntry(m, trails[m.EntryID])
	}
	return entries, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryAuditTrails(ctx context.Context, q querier, entryIDs []string) (map[string][]models.AuditRecord, error) {
	trails := make(map[string][]models.AuditRecord, len(entryIDs))
	if len(entryIDs) == 0 {
		return trails, nil
	}
	rows, err := q.Query(ctx, `
		SELECT entry_id, seq, action, actor_id, ts, details, status_before, status_after
		FROM scan_entry_audit_log
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, seq;
	`, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trails: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditRecord, error) {
		var a models.AuditRecord
		err := row.Scan(
			&a.EntryID,
			&a.Seq,
			&a.Action,
			&a.ActorID,
			&a.Timestamp,
			&a.Details,
			&a.StatusBefore,
			&a.StatusAfter,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit rows: %w", err)
	}
	for _, a := range records {
		trails[a.EntryID] = append(trails[a.EntryID], a)
	}
	return trails, nil
}
