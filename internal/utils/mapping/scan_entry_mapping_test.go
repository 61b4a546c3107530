package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEntryMapping_PreservesApprovalsAndTrail(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	verified := created.Add(time.Hour)
	approved := verified.Add(time.Hour)

	base := func(status domain.EntryStatus) domain.ScanEntry {
		return domain.ScanEntry{
			EntryID:    "entry-1",
			OperatorID: "op-1",
			ProjectID:  "proj-1",
			Scans:      120,
			EntryDate:  created,
			Status:     status,
			Approvals:  map[domain.Stage]domain.Approval{},
			AuditTrail: []domain.AuditRecord{
				{Seq: 1, Action: "Created", ActorID: "op-1", Timestamp: created, Details: "Entry created with 120 scans"},
			},
			AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "op-1", LastUpdatedAt: created, LastUpdatedBy: "op-1", Version: 1},
		}
	}

	entered := base(domain.StatusEntered)

	centerApproved := base(domain.StatusCenterApproved)
	centerApproved.Approvals[domain.StageSupervisor] = domain.Approval{Approved: true, ApprovedBy: "sup-1", ApprovedAt: verified}
	centerApproved.Approvals[domain.StageCenter] = domain.Approval{Approved: true, ApprovedBy: "cm-1", ApprovedAt: approved}
	centerApproved.AuditTrail = append(centerApproved.AuditTrail,
		domain.AuditRecord{Seq: 2, Action: "Supervisor Verified", ActorID: "sup-1", Timestamp: verified, Details: "Supervisor Verified by Ravi"},
		domain.AuditRecord{Seq: 3, Action: "Center Approved", ActorID: "cm-1", Timestamp: approved, Details: "Center Approved by Meena"},
	)
	centerApproved.LastUpdatedAt = approved
	centerApproved.LastUpdatedBy = "cm-1"
	centerApproved.Version = 3

	locked := base(domain.StatusLocked)
	locked.AuditTrail = append(locked.AuditTrail,
		domain.AuditRecord{Seq: 2, Action: "Locked", ActorID: "admin-1", Timestamp: verified, Details: "duplicate submission"},
	)
	locked.Version = 2

	tests := []struct {
		name   string
		entry  domain.ScanEntry
		before domain.EntryStatus
	}{
		{"entered with no approvals", entered, ""},
		{"two stages cleared", centerApproved, domain.StatusEntered},
		{"locked keeps empty approvals", locked, domain.StatusEntered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mapping.ToModelScanEntry(tt.entry)
			assert.Equal(t, string(tt.entry.Status), m.Status)
			assert.Len(t, m.Approvals, len(tt.entry.Approvals))
			for stage, a := range tt.entry.Approvals {
				stored, ok := m.Approvals[string(stage)]
				require.True(t, ok, "approval for %s", stage)
				assert.Equal(t, a.ApprovedBy, stored.ApprovedBy)
				assert.True(t, a.ApprovedAt.Equal(stored.ApprovedAt))
			}

			rows := mapping.ToModelAuditRecords(tt.entry.EntryID, tt.entry.AuditTrail, tt.before, tt.entry.Status)
			require.Len(t, rows, len(tt.entry.AuditTrail))
			for i, row := range rows {
				assert.Equal(t, tt.entry.EntryID, row.EntryID)
				assert.Equal(t, tt.entry.AuditTrail[i].Seq, row.Seq)
				assert.Equal(t, string(tt.before), row.StatusBefore)
				assert.Equal(t, string(tt.entry.Status), row.StatusAfter)
			}

			assert.Equal(t, tt.entry, mapping.ToDomainScanEntry(m, rows))
		})
	}
}

func TestToDomainScanEntry_NilApprovalsBecomeEmptyMap(t *testing.T) {
	m := mapping.ToModelScanEntry(domain.ScanEntry{EntryID: "entry-2", Status: domain.StatusEntered})
	m.Approvals = nil

	d := mapping.ToDomainScanEntry(m, nil)
	require.NotNil(t, d.Approvals)
	assert.Empty(t, d.Approvals)
	assert.Empty(t, d.AuditTrail)
}
