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
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/google/uuid"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	staffRepo   portsrepo.StaffReader
}

// PaymentOption is a functional option for configuring the payment service
type PaymentOption func(*paymentService)

// WithPaymentClock replaces the time source used for payment dates and audit fields
func WithPaymentClock(now func() time.Time) PaymentOption {
	return func(s *paymentService) {
		s.Clock = now
	}
}

// NewPaymentService creates the service recording realized payouts
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, staffRepo portsrepo.StaffReader, options ...PaymentOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: paymentRepo,
		staffRepo:   staffRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, actor domain.Actor, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if !domain.CanRecordPayment(actor.Role) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not record payments", actor.Role))
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	mode := req.PaymentMode
	if mode == "" {
		mode = domain.PaymentModeBankTransfer
	}
	if !mode.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unsupported payment mode %q", mode))
	}
	status := req.Status
	if status == "" {
		status = domain.PaymentProcessed
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unsupported payment status %q", status))
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff", req.StaffID)
		}
		s.LogError(ctx, err, "Failed to load staff for payment", slog.String("staff_id", req.StaffID))
		return nil, apperrors.NewAppError(500, "failed to load staff", err)
	}

	now := s.Now()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	// Payments made without explicit account details go to the staff member's bank account.
	account := domain.PaymentAccount{
		AccountNo: req.AccountDetails.AccountNo,
		IFSCCode:  req.AccountDetails.IFSCCode,
		BankName:  req.AccountDetails.BankName,
	}
	if account.AccountNo == "" && account.IFSCCode == "" {
		account.AccountNo = staff.BankDetails.AccountNo
		account.IFSCCode = staff.BankDetails.IFSCCode
	}

	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		StaffID:        staff.StaffID,
		Amount:         req.Amount,
		PaymentDate:    paymentDate,
		PaymentMode:    mode,
		TransactionID:  req.TransactionID,
		AccountDetails: account,
		Remarks:        req.Remarks,
		Status:         status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ID,
			Version:       1,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, wrapRepoError(err, "failed to save payment")
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("staff_id", payment.StaffID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if !domain.CanViewPayments(actor.Role) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not view payments", actor.Role))
	}

	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, apperrors.NewAppError(500, "failed to list payments", err)
	}
	return payments, nil
}

// ListPaymentsForStaff lets staff read their own history; other staff
// histories need the payments capability.
func (s *paymentService) ListPaymentsForStaff(ctx context.Context, actor domain.Actor, staffID string) ([]domain.Payment, error) {
	if err := s.RequireActive(ctx, actor); err != nil {
		return nil, err
	}
	if actor.ID != staffID && !domain.CanViewPayments(actor.Role) {
		return nil, apperrors.NewForbiddenError("not allowed to view payments of another staff member")
	}

	if _, err := s.staffRepo.FindStaffByID(ctx, staffID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("staff", staffID)
		}
		s.LogError(ctx, err, "Failed to load staff for payments", slog.String("staff_id", staffID))
		return nil, apperrors.NewAppError(500, "failed to load staff", err)
	}

	payments, err := s.paymentRepo.ListPaymentsByStaff(ctx, staffID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list staff payments", slog.String("staff_id", staffID))
		return nil, apperrors.NewAppError(500, "failed to list payments", err)
	}
	return payments, nil
}
