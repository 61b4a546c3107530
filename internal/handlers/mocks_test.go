package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkflowService ---
type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) Submit(ctx context.Context, actor domain.Actor, req dto.SubmitEntryRequest) (*domain.ScanEntry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) AdvanceStage(ctx context.Context, entryID string, stage domain.Stage, actor domain.Actor) (*domain.ScanEntry, error) {
	args := m.Called(ctx, entryID, stage, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) LockEntry(ctx context.Context, entryID string, actor domain.Actor, reason string) (*domain.ScanEntry, error) {
	args := m.Called(ctx, entryID, actor, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) ListApproved(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) ListMyEntries(ctx context.Context, actor domain.Actor) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockWorkflowService) GetEntry(ctx context.Context, actor domain.Actor, entryID string) (*domain.ScanEntry, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

var _ portssvc.WorkflowSvcFacade = (*MockWorkflowService)(nil)

// --- Mock StaffService ---
type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffService) ResolveActor(ctx context.Context, staffID string) (*domain.Actor, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockStaffService) AuthenticateStaff(ctx context.Context, mobile, password string) (*domain.Staff, error) {
	args := m.Called(ctx, mobile, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

var _ portssvc.StaffSvcFacade = (*MockStaffService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, staff *domain.Staff) (string, time.Time, error) {
	args := m.Called(ctx, staff)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) GetPayroll(ctx context.Context, actor domain.Actor) (*domain.PayrollReport, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollReport), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, actor domain.Actor, activeOnly bool) ([]domain.Project, error) {
	args := m.Called(ctx, actor, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, actor domain.Actor, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsForStaff(ctx context.Context, actor domain.Actor, staffID string) ([]domain.Payment, error) {
	args := m.Called(ctx, actor, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
