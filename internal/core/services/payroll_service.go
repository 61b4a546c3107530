package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/core/payroll"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
)

type payrollService struct {
	BaseService
	entryRepo   portsrepo.ScanEntryReader
	projectRepo portsrepo.ProjectReader
	staffRepo   portsrepo.StaffReader
}

// PayrollOption is a functional option for configuring the payroll service
type PayrollOption func(*payrollService)

// WithPayrollClock replaces the time source stamped on generated reports
func WithPayrollClock(now func() time.Time) PayrollOption {
	return func(s *payrollService) {
		s.Clock = now
	}
}

// NewPayrollService creates the on-demand payroll aggregator
func NewPayrollService(entryRepo portsrepo.ScanEntryReader, projectRepo portsrepo.ProjectReader, staffRepo portsrepo.StaffReader, options ...PayrollOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		staffRepo:   staffRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// GetPayroll prices every payable entry from one snapshot. Nothing is stored.
func (s *payrollService) GetPayroll(ctx context.Context, actor domain.Actor) (*domain.PayrollReport, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if !domain.CanViewPayroll(actor.Role) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not view payroll", actor.Role))
	}

	entries, err := s.entryRepo.ListScanEntriesByStatuses(ctx, payroll.PayableStatuses)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payable scan entries")
		return nil, apperrors.NewAppError(500, "failed to list payable scan entries", err)
	}

	projectIDs, operatorIDs := referencedIDs(entries)
	projects, err := s.projectRepo.FindProjectsByIDs(ctx, projectIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects for payroll")
		return nil, apperrors.NewAppError(500, "failed to load projects", err)
	}
	staff, err := s.staffRepo.FindStaffByIDs(ctx, operatorIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load operators for payroll")
		return nil, apperrors.NewAppError(500, "failed to load operators", err)
	}

	rows := payroll.Aggregate(entries, projects, staff)
	totalScans, totalPayout := payroll.Totals(rows)

	s.LogInfo(ctx, "Payroll generated",
		slog.Int("entries", len(entries)),
		slog.Int("rows", len(rows)),
		slog.String("total_payout", totalPayout.String()))

	return &domain.PayrollReport{
		Rows:        rows,
		TotalScans:  totalScans,
		TotalPayout: totalPayout,
		GeneratedAt: s.Now(),
	}, nil
}

func referencedIDs(entries []domain.ScanEntry) (projectIDs, operatorIDs []string) {
	seenProjects := make(map[string]bool)
	seenOperators := make(map[string]bool)
	for _, e := range entries {
		if !seenProjects[e.ProjectID] {
			seenProjects[e.ProjectID] = true
			projectIDs = append(projectIDs, e.ProjectID)
		}
		if !seenOperators[e.OperatorID] {
			seenOperators[e.OperatorID] = true
			operatorIDs = append(operatorIDs, e.OperatorID)
		}
	}
	return projectIDs, operatorIDs
}
