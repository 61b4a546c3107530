package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
	"github.com/SscSPs/scan_payroll_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	staffService portssvc.StaffAuthSvc
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(ss portssvc.StaffAuthSvc, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{staffService: ss, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	h := newAuthHandler(services.Staff, services.TokenService)

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
	return nil
}

// login godoc
// @Summary Staff login
// @Description Authenticates a staff member by mobile and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Account pending approval or inactive"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.AuthenticateStaff(c.Request.Context(), req.Mobile, req.Password)
	if err != nil {
		handleServiceError(c, logger, "login", err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), staff)
	if err != nil {
		logger.Error("Failed to generate JWT", slog.String("error", err.Error()), slog.String("staff_id", staff.StaffID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("Staff logged in", slog.String("staff_id", staff.StaffID), slog.String("role", string(staff.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Staff:     dto.ToStaffResponse(staff),
	})
}

// getMe godoc
// @Summary Current actor
// @Description Returns the identity and role the token resolves to.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ActorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToActorResponse(&actor))
}
