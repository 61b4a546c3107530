package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/utils"
)

type staffService struct {
	BaseService
	staffRepo portsrepo.StaffReader
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo portsrepo.StaffReader) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff", staffID)
		}
		s.LogError(ctx, err, "Failed to get staff", slog.String("staff_id", staffID))
		return nil, apperrors.NewAppError(500, "failed to get staff", err)
	}
	return staff, nil
}

func (s *staffService) ResolveActor(ctx context.Context, staffID string) (*domain.Actor, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to resolve actor", slog.String("staff_id", staffID))
		return nil, apperrors.NewAppError(500, "failed to resolve actor", err)
	}
	actor := staff.Actor()
	return &actor, nil
}

// AuthenticateStaff checks the password before the account status so a
// pending account is only revealed to someone who knows its password.
func (s *staffService) AuthenticateStaff(ctx context.Context, mobile, password string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up staff for login")
		return nil, apperrors.NewAppError(500, "failed to authenticate", err)
	}

	if !utils.CheckPasswordHash(password, staff.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login", slog.String("staff_id", staff.StaffID))
		return nil, apperrors.ErrUnauthorized
	}

	if !staff.IsActive() {
		return nil, apperrors.NewForbiddenError("account is pending approval or inactive")
	}

	s.LogInfo(ctx, "Staff authenticated", slog.String("staff_id", staff.StaffID), slog.String("role", string(staff.Role)))
	return staff, nil
}
