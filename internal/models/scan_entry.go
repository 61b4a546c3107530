package models

import "time"

// Approval is one element of the approvals JSONB column, keyed by stage.
type Approval struct {
	Approved   bool      `json:"approved"`
	ApprovedBy string    `json:"approvedBy"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// ScanEntry is a row of scan_entries. The audit trail lives in its own table.
type ScanEntry struct {
	EntryID    string              `db:"entry_id"`
	OperatorID string              `db:"operator_id"`
	ProjectID  string              `db:"project_id"`
	Scans      int                 `db:"scans"`
	EntryDate  time.Time           `db:"entry_date"`
	Status     string              `db:"status"`
	Approvals  map[string]Approval `db:"approvals"` // JSONB
	AuditFields
}

// AuditRecord is a row of scan_entry_audit_log. Rows are append-only.
type AuditRecord struct {
	EntryID      string    `db:"entry_id"`
	Seq          int       `db:"seq"`
	Action       string    `db:"action"`
	ActorID      string    `db:"actor_id"`
	Timestamp    time.Time `db:"ts"`
	Details      string    `db:"details"`
	StatusBefore string    `db:"status_before"`
	StatusAfter  string    `db:"status_after"`
}
