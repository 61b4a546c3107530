package services

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
)

// PayrollSvcFacade computes the payroll report on demand
type PayrollSvcFacade interface {
	GetPayroll(ctx context.Context, actor domain.Actor) (*domain.PayrollReport, error)
}

// PaymentReaderSvc defines read operations over realized payments
type PaymentReaderSvc interface {
	ListPayments(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	ListPaymentsForStaff(ctx context.Context, actor domain.Actor, staffID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations over realized payments
type PaymentWriterSvc interface {
	RecordPayment(ctx context.Context, actor domain.Actor, req dto.RecordPaymentRequest) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
