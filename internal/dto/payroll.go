package dto

import (
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollRowResponse is one (operator, project) payout line.
type PayrollRowResponse struct {
	OperatorID   string             `json:"operatorID"`
	OperatorName string             `json:"operatorName"`
	Mobile       string             `json:"mobile"`
	Center       string             `json:"center"`
	PANNumber    string             `json:"panNumber"`
	BankDetails  domain.BankDetails `json:"bankDetails"`
	ProjectID    string             `json:"projectID"`
	ProjectName  string             `json:"projectName"`
	Rate         decimal.Decimal    `json:"rate"`
	TotalScans   int                `json:"totalScans"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
}

// PayrollResponse is the payroll report.
type PayrollResponse struct {
	Rows        []PayrollRowResponse `json:"rows"`
	TotalScans  int                  `json:"totalScans"`
	TotalPayout decimal.Decimal      `json:"totalPayout"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// ToPayrollResponse converts a domain.PayrollReport to its DTO
func ToPayrollResponse(r *domain.PayrollReport) PayrollResponse {
	rows := make([]PayrollRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = PayrollRowResponse{
			OperatorID:   row.OperatorID,
			OperatorName: row.OperatorName,
			Mobile:       row.Mobile,
			Center:       row.Center,
			PANNumber:    row.PANNumber,
			BankDetails:  row.BankDetails,
			ProjectID:    row.ProjectID,
			ProjectName:  row.ProjectName,
			Rate:         row.ScanRate,
			TotalScans:   row.TotalScans,
			TotalAmount:  row.TotalAmount,
		}
	}
	return PayrollResponse{
		Rows:        rows,
		TotalScans:  r.TotalScans,
		TotalPayout: r.TotalPayout,
		GeneratedAt: r.GeneratedAt,
	}
}
