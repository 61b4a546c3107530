package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persisted form of a realized payout.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	StaffID       string          `db:"staff_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMode   string          `db:"payment_mode"`
	TransactionID string          `db:"transaction_id"`
	AccountNo     string          `db:"account_no"`
	IFSCCode      string          `db:"ifsc_code"`
	BankName      string          `db:"bank_name"`
	Remarks       string          `db:"remarks"`
	Status        string          `db:"status"`
	AuditFields
}
