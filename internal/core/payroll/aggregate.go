// Package payroll derives payable amounts from approved scan entries.
package payroll

import (
	"sort"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayableStatuses are the statuses whose entries count toward payroll.
var PayableStatuses = []domain.EntryStatus{
	domain.StatusProjectApproved,
	domain.StatusFinanceApproved,
	domain.StatusLocked,
}

// IsPayable reports whether an entry in status s is included in payroll.
func IsPayable(s domain.EntryStatus) bool {
	for _, p := range PayableStatuses {
		if p == s {
			return true
		}
	}
	return false
}

type groupKey struct {
	operatorID string
	projectID  string
}

// Aggregate groups payable entries by (operator, project) and prices them with
// the project's scan rate. Entries in other statuses are ignored, as are entries
// whose project or operator is missing from the lookups. Rows are ordered by
// operator name, then project name.
func Aggregate(entries []domain.ScanEntry, projects map[string]domain.Project, staff map[string]domain.Staff) []domain.PayrollRow {
	totals := make(map[groupKey]int)
	for _, e := range entries {
		if !IsPayable(e.Status) {
			continue
		}
		totals[groupKey{operatorID: e.OperatorID, projectID: e.ProjectID}] += e.Scans
	}

	rows := make([]domain.PayrollRow, 0, len(totals))
	for key, scans := range totals {
		project, ok := projects[key.projectID]
		if !ok {
			continue
		}
		operator, ok := staff[key.operatorID]
		if !ok {
			continue
		}
		rows = append(rows, domain.PayrollRow{
			OperatorID:   operator.StaffID,
			OperatorName: operator.Name,
			Mobile:       operator.Mobile,
			Center:       operator.Center,
			PANNumber:    operator.PANNumber,
			BankDetails:  operator.BankDetails,
			ProjectID:    project.ProjectID,
			ProjectName:  project.Name,
			ScanRate:     project.ScanRate,
			TotalScans:   scans,
			TotalAmount:  project.ScanRate.Mul(decimal.NewFromInt(int64(scans))),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OperatorName != rows[j].OperatorName {
			return rows[i].OperatorName < rows[j].OperatorName
		}
		if rows[i].ProjectName != rows[j].ProjectName {
			return rows[i].ProjectName < rows[j].ProjectName
		}
		return rows[i].OperatorID+rows[i].ProjectID < rows[j].OperatorID+rows[j].ProjectID
	})
	return rows
}

// Totals sums the scans and amounts over rows.
func Totals(rows []domain.PayrollRow) (int, decimal.Decimal) {
	scans := 0
	amount := decimal.Zero
	for _, r := range rows {
		scans += r.TotalScans
		amount = amount.Add(r.TotalAmount)
	}
	return scans, amount
}
