package workflow

import (
	"fmt"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/google/uuid"
)

// NewScanEntry builds a fresh entry in the entered status with its creation
// record. The project must already be resolved by the caller.
func NewScanEntry(operatorID string, project *domain.Project, scans int, date *time.Time, now time.Time) (domain.ScanEntry, error) {
	if operatorID == "" {
		return domain.ScanEntry{}, apperrors.NewValidationFailedError("operator is required")
	}
	if scans <= 0 {
		return domain.ScanEntry{}, apperrors.NewValidationFailedError(fmt.Sprintf("scans must be a positive integer, got %d", scans))
	}
	if project == nil {
		return domain.ScanEntry{}, apperrors.NewValidationFailedError("project is required")
	}
	if !project.IsActive {
		return domain.ScanEntry{}, apperrors.NewValidationFailedError(fmt.Sprintf("project %s is not active", project.ProjectID))
	}

	entryDate := now
	if date != nil && !date.IsZero() {
		entryDate = *date
	}

	entry := domain.ScanEntry{
		EntryID:    uuid.NewString(),
		OperatorID: operatorID,
		ProjectID:  project.ProjectID,
		Scans:      scans,
		EntryDate:  entryDate,
		Status:     domain.StatusEntered,
		Approvals:  make(map[domain.Stage]domain.Approval),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
			Version:       1,
		},
	}
	AppendAudit(&entry, ActionCreated, operatorID, fmt.Sprintf("Entry created with %d scans", scans), now)
	return entry, nil
}

// AppendAudit adds one record to the end of the entry's trail. Earlier records
// are never touched. A timestamp older than the last record is raised to it so
// the trail stays non-decreasing even if the clock steps back.
func AppendAudit(entry *domain.ScanEntry, action, actorID, details string, now time.Time) {
	ts := now
	if n := len(entry.AuditTrail); n > 0 {
		if last := entry.AuditTrail[n-1].Timestamp; ts.Before(last) {
			ts = last
		}
	}
	entry.AuditTrail = append(entry.AuditTrail, domain.AuditRecord{
		Seq:       len(entry.AuditTrail) + 1,
		Action:    action,
		ActorID:   actorID,
		Timestamp: ts,
		Details:   details,
	})
}
