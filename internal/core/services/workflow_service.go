package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/core/workflow"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
)

// maxAdvanceAttempts bounds how often a mutation re-reads after losing a
// version race before giving up.
const maxAdvanceAttempts = 3

// workflowService implements the WorkflowSvcFacade interface
type workflowService struct {
	BaseService
	entryRepo   portsrepo.ScanEntryRepositoryFacade
	projectRepo portsrepo.ProjectReader
}

// WorkflowOption is a functional option for configuring the workflow service
type WorkflowOption func(*workflowService)

// WithWorkflowClock replaces the time source used for approvals and audit records
func WithWorkflowClock(now func() time.Time) WorkflowOption {
	return func(s *workflowService) {
		s.Clock = now
	}
}

// NewWorkflowService creates the service that owns every scan entry transition
func NewWorkflowService(entryRepo portsrepo.ScanEntryRepositoryFacade, projectRepo portsrepo.ProjectReader, options ...WorkflowOption) portssvc.WorkflowSvcFacade {
	svc := &workflowService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WorkflowSvcFacade = (*workflowService)(nil)

func (s *workflowService) Submit(ctx context.Context, actor domain.Actor, req dto.SubmitEntryRequest) (*domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if req.Scans <= 0 {
		return nil, apperrors.NewValidationFailedError("scans must be a positive integer")
	}
	if req.ProjectID == "" {
		return nil, apperrors.NewValidationFailedError("projectID is required")
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("project", req.ProjectID)
		}
		s.LogError(ctx, err, "Failed to load project for submission", slog.String("project_id", req.ProjectID))
		return nil, apperrors.NewAppError(500, "failed to load project", err)
	}

	entry, err := workflow.NewScanEntry(actor.ID, project, req.Scans, req.Date, s.Now())
	if err != nil {
		s.LogWarn(ctx, err, "Scan entry rejected", slog.String("project_id", req.ProjectID))
		return nil, err
	}

	if err := s.entryRepo.SaveScanEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save scan entry", slog.String("entry_id", entry.EntryID))
		return nil, wrapRepoError(err, "failed to save scan entry")
	}

	s.LogInfo(ctx, "Scan entry submitted",
		slog.String("entry_id", entry.EntryID),
		slog.String("project_id", entry.ProjectID),
		slog.Int("scans", entry.Scans))
	return &entry, nil
}

func (s *workflowService) AdvanceStage(ctx context.Context, entryID string, stage domain.Stage, actor domain.Actor) (*domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	updated, err := s.mutate(ctx, entryID, func(current *domain.ScanEntry) (domain.ScanEntry, error) {
		return workflow.Advance(current, stage, actor, s.Now())
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Scan entry advanced",
		slog.String("entry_id", entryID),
		slog.String("stage", string(stage)),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

func (s *workflowService) LockEntry(ctx context.Context, entryID string, actor domain.Actor, reason string) (*domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	updated, err := s.mutate(ctx, entryID, func(current *domain.ScanEntry) (domain.ScanEntry, error) {
		return workflow.Lock(current, actor, reason, s.Now())
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Scan entry locked", slog.String("entry_id", entryID))
	return updated, nil
}

// mutate reads the entry, applies change and writes the result guarded by the
// version that was read. A lost race re-reads and re-evaluates change against
// the fresh state, so a concurrent winner turns the retry into the ordinary
// error change returns for the new status.
func (s *workflowService) mutate(ctx context.Context, entryID string, change func(*domain.ScanEntry) (domain.ScanEntry, error)) (*domain.ScanEntry, error) {
	for attempt := 1; attempt <= maxAdvanceAttempts; attempt++ {
		current, err := s.entryRepo.FindScanEntryByID(ctx, entryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("scan entry", entryID)
			}
			s.LogError(ctx, err, "Failed to load scan entry", slog.String("entry_id", entryID))
			return nil, apperrors.NewAppError(500, "failed to load scan entry", err)
		}

		next, err := change(current)
		if err != nil {
			s.LogWarn(ctx, err, "Scan entry transition rejected",
				slog.String("entry_id", entryID),
				slog.String("status", string(current.Status)))
			return nil, err
		}

		expected := current.Version
		next.Version = expected + 1
		err = s.entryRepo.UpdateScanEntry(ctx, next, expected)
		if err == nil {
			return &next, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogDebug(ctx, "Scan entry changed concurrently, retrying",
				slog.String("entry_id", entryID),
				slog.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("scan entry", entryID)
		}
		s.LogError(ctx, err, "Failed to update scan entry", slog.String("entry_id", entryID))
		return nil, apperrors.NewAppError(500, "failed to update scan entry", err)
	}

	err := apperrors.NewAppError(500,
		fmt.Sprintf("scan entry %s kept changing after %d attempts", entryID, maxAdvanceAttempts),
		apperrors.ErrConflict)
	s.LogError(ctx, err, "Giving up on contended scan entry", slog.String("entry_id", entryID))
	return nil, err
}

func (s *workflowService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}

	scope := workflow.PendingScopeFor(actor.Role)
	var (
		entries []domain.ScanEntry
		err     error
	)
	switch {
	case scope.None:
		return []domain.ScanEntry{}, nil
	case scope.AllUnlocked:
		// Admin oversight view: every unlocked entry, finance approved ones
		// included, since admin can still lock them.
		entries, err = s.entryRepo.ListUnlockedScanEntries(ctx)
	default:
		entries, err = s.entryRepo.ListScanEntriesByStatuses(ctx, []domain.EntryStatus{scope.Status})
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending scan entries", slog.String("role", string(actor.Role)))
		return nil, apperrors.NewAppError(500, "failed to list pending scan entries", err)
	}
	return entries, nil
}

func (s *workflowService) ListApproved(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if !domain.CanViewApproved(actor.Role) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not view approved entries", actor.Role))
	}

	entries, err := s.entryRepo.ListScanEntriesByStatuses(ctx, []domain.EntryStatus{domain.StatusFinanceApproved})
	if err != nil {
		s.LogError(ctx, err, "Failed to list approved scan entries")
		return nil, apperrors.NewAppError(500, "failed to list approved scan entries", err)
	}
	return entries, nil
}

func (s *workflowService) ListMyEntries(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListScanEntriesByOperator(ctx, actor.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own scan entries")
		return nil, apperrors.NewAppError(500, "failed to list scan entries", err)
	}
	return entries, nil
}

func (s *workflowService) GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.ScanEntry, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindScanEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("scan entry", entryID)
		}
		s.LogError(ctx, err, "Failed to load scan entry", slog.String("entry_id", entryID))
		return nil, apperrors.NewAppError(500, "failed to load scan entry", err)
	}

	if !canViewEntry(actor, entry) {
		return nil, apperrors.NewForbiddenError("not allowed to view this scan entry")
	}
	return entry, nil
}

// canViewEntry lets operators see their own entries and every reviewing role
// see all of them.
func canViewEntry(actor domain.Actor, entry *domain.ScanEntry) bool {
	if entry.OperatorID == actor.ID || actor.Role == domain.RoleAdmin {
		return true
	}
	_, reviewer := domain.StageForRole(actor.Role)
	return reviewer
}
