package mapping

import (
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/models"
)

// ToModelScanEntry converts a domain ScanEntry to a model ScanEntry. The audit
// trail is mapped separately with ToModelAuditRecords.
func ToModelScanEntry(d domain.ScanEntry) models.ScanEntry {
	approvals := make(map[string]models.Approval, len(d.Approvals))
	for stage, a := range d.Approvals {
		approvals[string(stage)] = models.Approval{
			Approved:   a.Approved,
			ApprovedBy: a.ApprovedBy,
			ApprovedAt: a.ApprovedAt,
		}
	}
	return models.ScanEntry{
		EntryID:     d.EntryID,
		OperatorID:  d.OperatorID,
		ProjectID:   d.ProjectID,
		Scans:       d.Scans,
		EntryDate:   d.EntryDate,
		Status:      string(d.Status),
		Approvals:   approvals,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScanEntry converts a model ScanEntry and its audit rows to a domain ScanEntry.
func ToDomainScanEntry(m models.ScanEntry, trail []models.AuditRecord) domain.ScanEntry {
	approvals := make(map[domain.Stage]domain.Approval, len(m.Approvals))
	for stage, a := range m.Approvals {
		approvals[domain.Stage(stage)] = domain.Approval{
			Approved:   a.Approved,
			ApprovedBy: a.ApprovedBy,
			ApprovedAt: a.ApprovedAt,
		}
	}
	records := make([]domain.AuditRecord, len(trail))
	for i, r := range trail {
		records[i] = ToDomainAuditRecord(r)
	}
	return domain.ScanEntry{
		EntryID:     m.EntryID,
		OperatorID:  m.OperatorID,
		ProjectID:   m.ProjectID,
		Scans:       m.Scans,
		EntryDate:   m.EntryDate,
		Status:      domain.EntryStatus(m.Status),
		Approvals:   approvals,
		AuditTrail:  records,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuditRecords converts audit records of entryID to rows. statusBefore is
// the status stored before the records were written, statusAfter the one after.
func ToModelAuditRecords(entryID string, records []domain.AuditRecord, statusBefore, statusAfter domain.EntryStatus) []models.AuditRecord {
	ms := make([]models.AuditRecord, len(records))
	for i, r := range records {
		ms[i] = models.AuditRecord{
			EntryID:      entryID,
			Seq:          r.Seq,
			Action:       r.Action,
			ActorID:      r.ActorID,
			Timestamp:    r.Timestamp,
			Details:      r.Details,
			StatusBefore: string(statusBefore),
			StatusAfter:  string(statusAfter),
		}
	}
	return ms
}

// ToDomainAuditRecord converts a model AuditRecord to a domain AuditRecord
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		Seq:       m.Seq,
		Action:    m.Action,
		ActorID:   m.ActorID,
		Timestamp: m.Timestamp,
		Details:   m.Details,
	}
}
