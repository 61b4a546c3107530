// Package workflow holds the pure approval state machine for scan entries.
// Nothing in this package performs I/O; callers supply the clock.
package workflow

import "github.com/SscSPs/scan_payroll_app/internal/core/domain"

// transition describes what clearing one stage requires and produces.
type transition struct {
	from   domain.EntryStatus
	to     domain.EntryStatus
	action string
}

// transitions is the single source of truth for forward progression.
// Adding a stage means adding one row here.
var transitions = map[domain.Stage]transition{
	domain.StageSupervisor: {from: domain.StatusEntered, to: domain.StatusSupervisorVerified, action: "Supervisor Verified"},
	domain.StageCenter:     {from: domain.StatusSupervisorVerified, to: domain.StatusCenterApproved, action: "Center Approved"},
	domain.StageProject:    {from: domain.StatusCenterApproved, to: domain.StatusProjectApproved, action: "Project Approved"},
	domain.StageFinance:    {from: domain.StatusProjectApproved, to: domain.StatusFinanceApproved, action: "Finance Approved"},
}

const (
	// ActionCreated is the action of the first audit record of every entry.
	ActionCreated = "Created"
	// ActionLocked is recorded when an administrator freezes an entry.
	ActionLocked = "Locked"
)

// PendingScope describes which entries are waiting on a given role.
type PendingScope struct {
	// AllUnlocked is set for roles that may act on every stage.
	AllUnlocked bool
	// Status is the single predecessor status the role acts on.
	Status domain.EntryStatus
	// None is set for roles that clear no stage.
	None bool
}

// PendingScopeFor derives the pending view of a role from the transition table.
func PendingScopeFor(role domain.Role) PendingScope {
	if role == domain.RoleAdmin {
		return PendingScope{AllUnlocked: true}
	}
	stage, ok := domain.StageForRole(role)
	if !ok {
		return PendingScope{None: true}
	}
	return PendingScope{Status: transitions[stage].from}
}
