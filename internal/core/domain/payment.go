package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is how a payment was transferred.
type PaymentMode string

const (
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeCheque       PaymentMode = "cheque"
)

// IsValid returns true if the mode is supported.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeBankTransfer, PaymentModeCash, PaymentModeUPI, PaymentModeCheque:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentProcessed PaymentStatus = "processed"
	PaymentFailed    PaymentStatus = "failed"
)

// IsValid returns true if the status is supported.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentProcessed, PaymentFailed:
		return true
	}
	return false
}

// PaymentAccount is the destination recorded with a payment.
type PaymentAccount struct {
	AccountNo string `json:"accountNo"`
	IFSCCode  string `json:"ifscCode"`
	BankName  string `json:"bankName"`
}

// Payment is a realized payout to a staff member. It is never reconciled
// against scan entries.
type Payment struct {
	PaymentID      string          `json:"paymentID"` // Primary Key (UUID)
	StaffID        string          `json:"staffID"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	PaymentMode    PaymentMode     `json:"paymentMode"`
	TransactionID  string          `json:"transactionID"`
	AccountDetails PaymentAccount  `json:"accountDetails"`
	Remarks        string          `json:"remarks"`
	Status         PaymentStatus   `json:"status"`
	AuditFields
}
