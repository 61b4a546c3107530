package dto

import (
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// SubmitEntryRequest is the body of a new scan entry. The operator is always
// the authenticated caller.
type SubmitEntryRequest struct {
	ProjectID string     `json:"projectID" binding:"required"`
	Scans     int        `json:"scans" binding:"required,gt=0"`
	Date      *time.Time `json:"date,omitempty"`
}

// AdvanceStageURI binds the path of the stage endpoint.
type AdvanceStageURI struct {
	EntryID string `uri:"entryID" binding:"required"`
	Stage   string `uri:"stage" binding:"required,entrystage"`
}

// LockEntryRequest is the optional body of the lock endpoint.
type LockEntryRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ApprovalResponse is one cleared stage of an entry.
type ApprovalResponse struct {
	Approved   bool      `json:"approved"`
	ApprovedBy string    `json:"approvedBy"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// AuditRecordResponse is one line of an entry's history.
type AuditRecordResponse struct {
	Seq       int       `json:"seq"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actorID"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// ScanEntryResponse is the API view of a scan entry.
type ScanEntryResponse struct {
	EntryID    string                      `json:"entryID"`
	OperatorID string                      `json:"operatorID"`
	ProjectID  string                      `json:"projectID"`
	Scans      int                         `json:"scans"`
	Date       time.Time                   `json:"date"`
	Status     domain.EntryStatus          `json:"status"`
	Approvals  map[string]ApprovalResponse `json:"approvals"`
	AuditTrail []AuditRecordResponse       `json:"auditTrail"`
	Version    int                         `json:"version"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// ListScanEntriesResponse wraps a list of entries.
type ListScanEntriesResponse struct {
	Entries []ScanEntryResponse `json:"entries"`
	Count   int                 `json:"count"`
}

// ToScanEntryResponse converts a domain.ScanEntry to its DTO
func ToScanEntryResponse(e *domain.ScanEntry) ScanEntryResponse {
	approvals := make(map[string]ApprovalResponse, len(e.Approvals))
	for stage, a := range e.Approvals {
		approvals[string(stage)] = ApprovalResponse{Approved: a.Approved, ApprovedBy: a.ApprovedBy, ApprovedAt: a.ApprovedAt}
	}
	trail := make([]AuditRecordResponse, len(e.AuditTrail))
	for i, r := range e.AuditTrail {
		trail[i] = AuditRecordResponse{Seq: r.Seq, Action: r.Action, ActorID: r.ActorID, Timestamp: r.Timestamp, Details: r.Details}
	}
	return ScanEntryResponse{
		EntryID:    e.EntryID,
		OperatorID: e.OperatorID,
		ProjectID:  e.ProjectID,
		Scans:      e.Scans,
		Date:       e.EntryDate,
		Status:     e.Status,
		Approvals:  approvals,
		AuditTrail: trail,
		Version:    e.Version,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.LastUpdatedAt,
	}
}

// ToListScanEntriesResponse converts a slice of entries to the list DTO
func ToListScanEntriesResponse(entries []domain.ScanEntry) ListScanEntriesResponse {
	out := make([]ScanEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToScanEntryResponse(&entries[i])
	}
	return ListScanEntriesResponse{Entries: out, Count: len(out)}
}
