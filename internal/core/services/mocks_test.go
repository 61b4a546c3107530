package services_test

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockScanEntryRepository is a mock type for the ScanEntryRepositoryFacade interface
type MockScanEntryRepository struct {
	mock.Mock
}

func (m *MockScanEntryRepository) FindScanEntryByID(ctx context.Context, entryID string) (*domain.ScanEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanEntry), args.Error(1)
}

func (m *MockScanEntryRepository) ListScanEntriesByStatuses(ctx context.Context, statuses []domain.EntryStatus) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockScanEntryRepository) ListUnlockedScanEntries(ctx context.Context) ([]domain.ScanEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockScanEntryRepository) ListScanEntriesByOperator(ctx context.Context, operatorID string) ([]domain.ScanEntry, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanEntry), args.Error(1)
}

func (m *MockScanEntryRepository) SaveScanEntry(ctx context.Context, entry domain.ScanEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScanEntryRepository) UpdateScanEntry(ctx context.Context, entry domain.ScanEntry, expectedVersion int) error {
	args := m.Called(ctx, entry, expectedVersion)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// MockStaffRepository is a mock type for the StaffRepositoryFacade interface
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByMobile(ctx context.Context, mobile string) (*domain.Staff, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	args := m.Called(ctx, staffIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByStaff(ctx context.Context, staffID string) ([]domain.Payment, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func actorWithRole(id string, role domain.Role) domain.Actor {
	return domain.Actor{ID: id, Name: "Name " + id, Role: role, Status: domain.StaffActive}
}
