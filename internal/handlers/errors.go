package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the service error taxonomy onto HTTP status codes.
// Anything outside the taxonomy, a lost optimistic write included, is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage prefers the AppError message so wrapped causes stay out of responses.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// handleServiceError logs err at a level matching its class and writes the response.
func handleServiceError(c *gin.Context, logger *slog.Logger, op string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Service call failed", slog.String("operation", op), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	logger.Warn("Service call rejected", slog.String("operation", op), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": errorMessage(err)})
}
