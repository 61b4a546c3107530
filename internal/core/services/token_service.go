package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/platform/config"
	"github.com/SscSPs/scan_payroll_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// TokenOption is a functional option for configuring the token service
type TokenOption func(*tokenService)

// WithTokenClock replaces the time source used for issued-at and expiry claims
func WithTokenClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.Clock = now
	}
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, options ...TokenOption) portssvc.TokenSvcFacade {
	s := &tokenService{cfg: cfg}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given staff member.
func (s *tokenService) GenerateAccessToken(ctx context.Context, staff *domain.Staff) (string, time.Time, error) {
	now := s.Now()
	accessToken, err := utils.GenerateJWT(staff.StaffID, s.cfg.JWTSecret, now, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("staff_id", staff.StaffID))
		return "", time.Time{}, apperrors.NewAppError(500, "failed to generate access token", err)
	}
	return accessToken, now.Add(s.cfg.JWTExpiryDuration), nil
}
