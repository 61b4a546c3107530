package repositories

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// StaffReader defines read operations for staff data
type StaffReader interface {
	// FindStaffByID retrieves a staff member by ID. Returns apperrors.ErrNotFound if absent.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// FindStaffByMobile retrieves a staff member by login mobile number.
	FindStaffByMobile(ctx context.Context, mobile string) (*domain.Staff, error)

	// FindStaffByIDs retrieves the staff members that exist among staffIDs, keyed by ID.
	FindStaffByIDs(ctx context.Context, staffIDs []string) (map[string]domain.Staff, error)
}

// StaffWriter defines write operations for staff data
type StaffWriter interface {
	// SaveStaff inserts a staff member or updates the existing record with the same ID.
	SaveStaff(ctx context.Context, staff domain.Staff) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
