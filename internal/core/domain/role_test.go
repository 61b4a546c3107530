package domain_test

import (
	"testing"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizedFor(t *testing.T) {
	expected := map[domain.Role]domain.Stage{
		domain.RoleSupervisor:     domain.StageSupervisor,
		domain.RoleCenterManager:  domain.StageCenter,
		domain.RoleProjectManager: domain.StageProject,
		domain.RoleFinanceManager: domain.StageFinance,
	}

	for role, owned := range expected {
		for _, stage := range domain.Stages {
			assert.Equal(t, stage == owned, domain.RoleAuthorizedFor(role, stage),
				"role %s stage %s", role, stage)
		}
	}

	for _, stage := range domain.Stages {
		assert.True(t, domain.RoleAuthorizedFor(domain.RoleAdmin, stage), "admin must clear %s", stage)
		assert.False(t, domain.RoleAuthorizedFor(domain.RoleStaff, stage), "staff must not clear %s", stage)
		assert.False(t, domain.RoleAuthorizedFor(domain.Role("auditor"), stage))
	}

	assert.False(t, domain.RoleAuthorizedFor(domain.RoleAdmin, domain.Stage("qa")))
}

func TestStageForRole(t *testing.T) {
	stage, ok := domain.StageForRole(domain.RoleCenterManager)
	assert.True(t, ok)
	assert.Equal(t, domain.StageCenter, stage)

	_, ok = domain.StageForRole(domain.RoleAdmin)
	assert.False(t, ok)
	_, ok = domain.StageForRole(domain.RoleStaff)
	assert.False(t, ok)
}

func TestCapabilityPredicates(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleFinanceManager} {
		assert.True(t, domain.CanViewApproved(role))
		assert.True(t, domain.CanViewPayroll(role))
		assert.True(t, domain.CanViewPayments(role))
	}
	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleSupervisor, domain.RoleCenterManager, domain.RoleProjectManager} {
		assert.False(t, domain.CanViewApproved(role))
		assert.False(t, domain.CanViewPayroll(role))
		assert.False(t, domain.CanLockEntry(role))
	}
	assert.True(t, domain.CanLockEntry(domain.RoleAdmin))
	assert.False(t, domain.CanRecordPayment(domain.RoleFinanceManager))
}

func TestEntryStatusRank(t *testing.T) {
	order := []domain.EntryStatus{
		domain.StatusEntered,
		domain.StatusSupervisorVerified,
		domain.StatusCenterApproved,
		domain.StatusProjectApproved,
		domain.StatusFinanceApproved,
	}
	for i, s := range order {
		assert.Equal(t, i, s.Rank())
		assert.True(t, s.IsValid())
	}
	assert.Equal(t, -1, domain.StatusLocked.Rank())
	assert.True(t, domain.StatusLocked.IsValid())
	assert.True(t, domain.StatusLocked.IsTerminal())
	assert.True(t, domain.StatusFinanceApproved.IsTerminal())
	assert.False(t, domain.StatusProjectApproved.IsTerminal())
	assert.False(t, domain.EntryStatus("rejected").IsValid())
}

func TestScanEntryCloneDoesNotAlias(t *testing.T) {
	orig := domain.ScanEntry{
		EntryID:    "e1",
		Approvals:  map[domain.Stage]domain.Approval{domain.StageSupervisor: {Approved: true, ApprovedBy: "s1"}},
		AuditTrail: []domain.AuditRecord{{Seq: 1, Action: "Created"}},
	}
	cp := orig.Clone()
	cp.Approvals[domain.StageCenter] = domain.Approval{Approved: true}
	cp.AuditTrail[0].Action = "Changed"
	cp.AuditTrail = append(cp.AuditTrail, domain.AuditRecord{Seq: 2})

	assert.False(t, orig.IsApproved(domain.StageCenter))
	assert.Equal(t, "Created", orig.AuditTrail[0].Action)
	assert.Len(t, orig.AuditTrail, 1)
}
