package mapping

import (
	"database/sql"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/models"
)

// ToModelStaff converts a domain Staff to a model Staff
func ToModelStaff(d domain.Staff) models.Staff {
	m := models.Staff{
		StaffID:       d.StaffID,
		Name:          d.Name,
		Mobile:        d.Mobile,
		EmployeeID:    d.EmployeeID,
		ScannerID:     d.ScannerID,
		PANNumber:     d.PANNumber,
		BankAccountNo: d.BankDetails.AccountNo,
		BankIFSCCode:  d.BankDetails.IFSCCode,
		Address:       d.Address,
		Center:        d.Center,
		Status:        string(d.Status),
		Role:          string(d.Role),
		PasswordHash:  d.PasswordHash,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.ProjectID != nil {
		m.ProjectID = sql.NullString{String: *d.ProjectID, Valid: true}
	}
	return m
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	d := domain.Staff{
		StaffID:    m.StaffID,
		Name:       m.Name,
		Mobile:     m.Mobile,
		EmployeeID: m.EmployeeID,
		ScannerID:  m.ScannerID,
		PANNumber:  m.PANNumber,
		BankDetails: domain.BankDetails{
			AccountNo: m.BankAccountNo,
			IFSCCode:  m.BankIFSCCode,
		},
		Address:      m.Address,
		Center:       m.Center,
		Status:       domain.StaffStatus(m.Status),
		Role:         domain.Role(m.Role),
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.ProjectID.Valid {
		projectID := m.ProjectID.String
		d.ProjectID = &projectID
	}
	return d
}
