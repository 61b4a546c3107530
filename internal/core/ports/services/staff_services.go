package services

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// StaffReaderSvc defines read operations for staff data
type StaffReaderSvc interface {
	// GetStaffByID retrieves a staff member by ID.
	GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
}

// ActorResolverSvc turns an authenticated identity into the actor the engine consumes.
type ActorResolverSvc interface {
	// ResolveActor loads the staff member behind staffID and projects it to an Actor.
	// An unknown staffID returns apperrors.ErrUnauthorized.
	ResolveActor(ctx context.Context, staffID string) (*domain.Actor, error)
}

// StaffAuthSvc defines operations for staff authentication
type StaffAuthSvc interface {
	// AuthenticateStaff checks mobile and password. Bad credentials return
	// apperrors.ErrUnauthorized; a pending or inactive account returns apperrors.ErrForbidden.
	AuthenticateStaff(ctx context.Context, mobile, password string) (*domain.Staff, error)
}

// StaffSvcFacade combines all staff-related service interfaces
type StaffSvcFacade interface {
	StaffReaderSvc
	ActorResolverSvc
	StaffAuthSvc
}
