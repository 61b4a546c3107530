package services

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
)

// WorkflowReaderSvc defines the read views over scan entries
type WorkflowReaderSvc interface {
	// ListPending returns the entries waiting on the actor's role, newest first.
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error)

	// ListApproved returns every finance-approved entry, newest first.
	ListApproved(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error)

	// ListMyEntries returns the actor's own submissions, newest first.
	ListMyEntries(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error)

	// GetEntry returns one entry with its full audit trail.
	GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.ScanEntry, error)
}

// WorkflowWriterSvc defines the operations that move scan entries
type WorkflowWriterSvc interface {
	// Submit creates a new entry for the actor in the entered status.
	Submit(ctx context.Context, actor domain.Actor, req dto.SubmitEntryRequest) (*domain.ScanEntry, error)

	// AdvanceStage clears stage on the entry atomically.
	AdvanceStage(ctx context.Context, entryID string, stage domain.Stage, actor domain.Actor) (*domain.ScanEntry, error)

	// LockEntry freezes the entry administratively.
	LockEntry(ctx context.Context, entryID string, actor domain.Actor, reason string) (*domain.ScanEntry, error)
}

// WorkflowSvcFacade combines all workflow service interfaces
type WorkflowSvcFacade interface {
	WorkflowReaderSvc
	WorkflowWriterSvc
}
