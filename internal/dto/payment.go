package dto

import (
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentAccountRequest is the destination account of a recorded payment.
type PaymentAccountRequest struct {
	AccountNo string `json:"accountNo" binding:"omitempty,bankaccount"`
	IFSCCode  string `json:"ifscCode" binding:"omitempty,ifsc"`
	BankName  string `json:"bankName" binding:"max=100"`
}

// RecordPaymentRequest is the body for recording one realized payment.
type RecordPaymentRequest struct {
	StaffID        string                `json:"staffID" binding:"required"`
	Amount         decimal.Decimal       `json:"amount"`
	PaymentDate    *time.Time            `json:"paymentDate,omitempty"`
	PaymentMode    domain.PaymentMode    `json:"paymentMode,omitempty" binding:"omitempty,oneof=bank_transfer cash upi cheque"`
	TransactionID  string                `json:"transactionID" binding:"max=100"`
	AccountDetails PaymentAccountRequest `json:"accountDetails"`
	Remarks        string                `json:"remarks" binding:"max=500"`
	Status         domain.PaymentStatus  `json:"status,omitempty" binding:"omitempty,oneof=pending processed failed"`
}

// PaymentResponse is the API view of a payment.
type PaymentResponse struct {
	PaymentID      string                `json:"paymentID"`
	StaffID        string                `json:"staffID"`
	Amount         decimal.Decimal       `json:"amount"`
	PaymentDate    time.Time             `json:"paymentDate"`
	PaymentMode    domain.PaymentMode    `json:"paymentMode"`
	TransactionID  string                `json:"transactionID,omitempty"`
	AccountDetails domain.PaymentAccount `json:"accountDetails"`
	Remarks        string                `json:"remarks,omitempty"`
	Status         domain.PaymentStatus  `json:"status"`
}

// ListPaymentsResponse wraps a list of payments with their total.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPaid decimal.Decimal   `json:"totalPaid"`
}

// ToPaymentResponse converts a domain.Payment to its DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:      p.PaymentID,
		StaffID:        p.StaffID,
		Amount:         p.Amount,
		PaymentDate:    p.PaymentDate,
		PaymentMode:    p.PaymentMode,
		TransactionID:  p.TransactionID,
		AccountDetails: p.AccountDetails,
		Remarks:        p.Remarks,
		Status:         p.Status,
	}
}

// ToListPaymentsResponse converts payments to the list DTO. Failed payments
// are listed but not counted toward the total.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	out := make([]PaymentResponse, len(payments))
	total := decimal.Zero
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
		if payments[i].Status != domain.PaymentFailed {
			total = total.Add(payments[i].Amount)
		}
	}
	return ListPaymentsResponse{Payments: out, TotalPaid: total}
}
