package domain

import "time"

// EntryStatus is the pipeline position of a scan entry.
type EntryStatus string

const (
	StatusEntered            EntryStatus = "entered"
	StatusSupervisorVerified EntryStatus = "supervisor_verified"
	StatusCenterApproved     EntryStatus = "center_approved"
	StatusProjectApproved    EntryStatus = "project_approved"
	StatusFinanceApproved    EntryStatus = "finance_approved"
	StatusLocked             EntryStatus = "locked" // Administrative, absorbing
)

// statusRank orders the forward pipeline. Locked sits outside the order.
var statusRank = map[EntryStatus]int{
	StatusEntered:            0,
	StatusSupervisorVerified: 1,
	StatusCenterApproved:     2,
	StatusProjectApproved:    3,
	StatusFinanceApproved:    4,
}

// Rank returns the position of s in the forward pipeline, or -1 for locked and
// unknown statuses.
func (s EntryStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// IsValid returns true if s is a known status.
func (s EntryStatus) IsValid() bool {
	return s == StatusLocked || s.Rank() >= 0
}

// IsTerminal returns true if no forward transition is defined from s.
func (s EntryStatus) IsTerminal() bool {
	return s == StatusFinanceApproved || s == StatusLocked
}

func (s EntryStatus) String() string {
	return string(s)
}

// Approval records who cleared a stage and when.
type Approval struct {
	Approved   bool      `json:"approved"`
	ApprovedBy string    `json:"approvedBy"` // StaffID of the approver
	ApprovedAt time.Time `json:"approvedAt"`
}

// AuditRecord is one immutable line of an entry's history.
type AuditRecord struct {
	Seq       int       `json:"seq"` // 1-based position in the trail
	Action    string    `json:"action"`
	ActorID   string    `json:"actorID"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// ScanEntry is one operator's scan-count submission for one project.
type ScanEntry struct {
	EntryID    string             `json:"entryID"` // Primary Key (UUID)
	OperatorID string             `json:"operatorID"`
	ProjectID  string             `json:"projectID"`
	Scans      int                `json:"scans"`
	EntryDate  time.Time          `json:"entryDate"`
	Status     EntryStatus        `json:"status"`
	Approvals  map[Stage]Approval `json:"approvals"`
	AuditTrail []AuditRecord      `json:"auditTrail"`
	AuditFields
}

// Clone returns a deep copy so transitions never alias the caller's entry.
func (e ScanEntry) Clone() ScanEntry {
	out := e
	out.Approvals = make(map[Stage]Approval, len(e.Approvals))
	for k, v := range e.Approvals {
		out.Approvals[k] = v
	}
	out.AuditTrail = append([]AuditRecord(nil), e.AuditTrail...)
	return out
}

// IsApproved reports whether stage has been cleared on the entry.
func (e ScanEntry) IsApproved(stage Stage) bool {
	return e.Approvals[stage].Approved
}
