package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/SscSPs/scan_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.recordPayment)
	}
	rg.GET("/staff/:staffID/payments", h.listPaymentsForStaff)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a realized payout to a staff member. Admin only. Account details default to the staff member's bank details.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Staff not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("staff_id", req.StaffID)), "record_payment", err)
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("amount", payment.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Lists every recorded payment, newest first. Admin and finance only.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, "list_payments", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// listPaymentsForStaff godoc
// @Summary List payments for a staff member
// @Description Staff may list their own payments; admin and finance may list anyone's.
// @Tags payments
// @Produce json
// @Param staffID path string true "Staff ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staffID}/payments [get]
func (h *paymentHandler) listPaymentsForStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	staffID := c.Param("staffID")
	payments, err := h.paymentService.ListPaymentsForStaff(c.Request.Context(), actor, staffID)
	if err != nil {
		handleServiceError(c, logger.With(slog.String("staff_id", staffID)), "list_payments_for_staff", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
