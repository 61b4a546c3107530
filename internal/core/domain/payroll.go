package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRow is the payout for one (operator, project) pair.
type PayrollRow struct {
	OperatorID   string          `json:"operatorID"`
	OperatorName string          `json:"operatorName"`
	Mobile       string          `json:"mobile"`
	Center       string          `json:"center"`
	PANNumber    string          `json:"panNumber"`
	BankDetails  BankDetails     `json:"bankDetails"`
	ProjectID    string          `json:"projectID"`
	ProjectName  string          `json:"projectName"`
	ScanRate     decimal.Decimal `json:"scanRate"`
	TotalScans   int             `json:"totalScans"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// PayrollReport is the full payroll view computed on demand.
type PayrollReport struct {
	Rows        []PayrollRow    `json:"rows"`
	TotalScans  int             `json:"totalScans"`
	TotalPayout decimal.Decimal `json:"totalPayout"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
