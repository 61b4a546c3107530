package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time
}

// Now returns the service's notion of the current time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected request with the reason attached
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("reason", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireActive rejects actors whose account is pending or inactive. Every
// service operation calls it before anything else.
func (s *BaseService) RequireActive(ctx context.Context, actor domain.Actor) error {
	if actor.IsActive() {
		return nil
	}
	err := apperrors.NewForbiddenError("account is pending approval or inactive")
	s.LogWarn(ctx, err, "Inactive actor rejected",
		slog.String("staff_id", actor.ID),
		slog.String("status", string(actor.Status)))
	return err
}

// wrapRepoError keeps domain errors from a repository as they are and turns
// everything else into an infrastructure error.
func wrapRepoError(err error, msg string) error {
	if apperrors.IsDomainError(err) {
		return err
	}
	return apperrors.NewAppError(500, msg, err)
}
