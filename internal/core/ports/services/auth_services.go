package services

import (
	"context"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT whose subject is the staff ID.
	GenerateAccessToken(ctx context.Context, staff *domain.Staff) (string, time.Time, error)
}
