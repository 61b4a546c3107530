package repositories

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// ScanEntryReader defines read operations for scan entries. Every list is
// ordered by entry date, newest first, and returns entries with their full
// approvals and audit trail.
type ScanEntryReader interface {
	// FindScanEntryByID retrieves an entry. Returns apperrors.ErrNotFound if absent.
	FindScanEntryByID(ctx context.Context, entryID string) (*domain.ScanEntry, error)

	// ListScanEntriesByStatuses retrieves entries whose status is any of statuses
	// as a single snapshot.
	ListScanEntriesByStatuses(ctx context.Context, statuses []domain.EntryStatus) ([]domain.ScanEntry, error)

	// ListUnlockedScanEntries retrieves every entry whose status is not locked.
	ListUnlockedScanEntries(ctx context.Context) ([]domain.ScanEntry, error)

	// ListScanEntriesByOperator retrieves the entries submitted by operatorID.
	ListScanEntriesByOperator(ctx context.Context, operatorID string) ([]domain.ScanEntry, error)
}

// ScanEntryWriter defines write operations for scan entries
type ScanEntryWriter interface {
	// SaveScanEntry inserts a new entry together with its audit trail.
	SaveScanEntry(ctx context.Context, entry domain.ScanEntry) error

	// UpdateScanEntry replaces the status and approvals of an entry and appends
	// the audit records it does not have yet, all in one atomic step. The write
	// only happens if the stored version equals expectedVersion; the stored
	// version then becomes expectedVersion+1. A version mismatch returns
	// apperrors.ErrConflict, a missing entry apperrors.ErrNotFound.
	UpdateScanEntry(ctx context.Context, entry domain.ScanEntry, expectedVersion int) error
}

// ScanEntryRepositoryFacade combines all scan entry repository interfaces
type ScanEntryRepositoryFacade interface {
	ScanEntryReader
	ScanEntryWriter
}
