package domain

// Role is the capability selector attached to every staff account.
type Role string

const (
	RoleStaff          Role = "staff"
	RoleSupervisor     Role = "supervisor"
	RoleCenterManager  Role = "center_manager"
	RoleProjectManager Role = "project_manager"
	RoleFinanceManager Role = "finance_manager"
	RoleAdmin          Role = "admin"
)

var validRoles = map[Role]bool{
	RoleStaff:          true,
	RoleSupervisor:     true,
	RoleCenterManager:  true,
	RoleProjectManager: true,
	RoleFinanceManager: true,
	RoleAdmin:          true,
}

// IsValid returns true if the role is one of the fixed role set.
func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}

// Stage names one approval checkpoint of the pipeline.
type Stage string

const (
	StageSupervisor Stage = "supervisor"
	StageCenter     Stage = "center"
	StageProject    Stage = "project"
	StageFinance    Stage = "finance"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{StageSupervisor, StageCenter, StageProject, StageFinance}

// IsValid returns true if the stage is one of the four approval checkpoints.
func (s Stage) IsValid() bool {
	_, ok := stageOwners[s]
	return ok
}

func (s Stage) String() string {
	return string(s)
}

// stageOwners maps each stage to the single non-admin role that clears it.
var stageOwners = map[Stage]Role{
	StageSupervisor: RoleSupervisor,
	StageCenter:     RoleCenterManager,
	StageProject:    RoleProjectManager,
	StageFinance:    RoleFinanceManager,
}

// RoleAuthorizedFor reports whether role may clear stage. Admin clears every
// stage, staff clears none, and unknown roles or stages are never authorized.
func RoleAuthorizedFor(role Role, stage Stage) bool {
	owner, ok := stageOwners[stage]
	if !ok {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	return owner == role
}

// StageForRole returns the stage a non-admin role is responsible for.
func StageForRole(role Role) (Stage, bool) {
	for stage, owner := range stageOwners {
		if owner == role {
			return stage, true
		}
	}
	return "", false
}

// CanViewApproved reports whether role may read the finance-approved history.
func CanViewApproved(role Role) bool {
	return role == RoleAdmin || role == RoleFinanceManager
}

// CanViewPayroll reports whether role may compute the payroll report.
func CanViewPayroll(role Role) bool {
	return role == RoleAdmin || role == RoleFinanceManager
}

// CanViewPayments reports whether role may read every staff member's payments.
func CanViewPayments(role Role) bool {
	return role == RoleAdmin || role == RoleFinanceManager
}

// CanRecordPayment reports whether role may record a realized payment.
func CanRecordPayment(role Role) bool {
	return role == RoleAdmin
}

// CanLockEntry reports whether role may freeze an entry administratively.
func CanLockEntry(role Role) bool {
	return role == RoleAdmin
}
