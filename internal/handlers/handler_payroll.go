package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)
	rg.GET("/payroll", h.getPayroll)
}

// getPayroll godoc
// @Summary Payroll report
// @Description Sums payable scans per operator and project and prices them at the project's scan rate.
// @Tags payroll
// @Produce json
// @Success 200 {object} dto.PayrollResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	report, err := h.payrollService.GetPayroll(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, "get_payroll", err)
		return
	}

	logger.Info("Payroll generated", slog.Int("rows", len(report.Rows)), slog.String("total_payout", report.TotalPayout.String()))
	c.JSON(http.StatusOK, dto.ToPayrollResponse(report))
}
