package repositories

import (
	"context"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// PaymentReader defines read operations for realized payments. Lists are
// ordered by payment date, newest first.
type PaymentReader interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListPaymentsByStaff(ctx context.Context, staffID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for realized payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
