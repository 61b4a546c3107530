package mapping

import (
	"database/sql"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	m := models.Project{
		ProjectID:   d.ProjectID,
		Name:        d.Name,
		Center:      d.Center,
		ScanRate:    d.ScanRate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.ProductivityLimit != nil {
		m.ProductivityLimit = sql.NullInt32{Int32: int32(*d.ProductivityLimit), Valid: true}
	}
	return m
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	d := domain.Project{
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Center:      m.Center,
		ScanRate:    m.ScanRate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ProductivityLimit.Valid {
		limit := int(m.ProductivityLimit.Int32)
		d.ProductivityLimit = &limit
	}
	return d
}

// ToDomainProjectSlice converts a slice of model Projects to a slice of domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
