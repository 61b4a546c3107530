package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ActorMiddleware resolves the authenticated staff ID into an actor and stores
// it in the request context. It must run after AuthMiddleware. Account status
// is not checked here; services reject inactive actors themselves.
func ActorMiddleware(resolver portssvc.ActorResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		staffID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("Staff ID not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		actor, err := resolver.ResolveActor(c.Request.Context(), staffID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject does not match a staff account")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			logger.Error("Failed to resolve actor", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx := WithActor(c.Request.Context(), *actor)
		ctx = WithLogger(ctx, logger.With(slog.String("role", string(actor.Role))))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
