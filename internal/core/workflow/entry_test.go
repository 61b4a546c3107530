package workflow_test

import (
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/core/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScanEntry(t *testing.T) {
	entry, err := workflow.NewScanEntry("op-1", activeProject(), 20, nil, baseTime)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.EntryID)
	assert.Equal(t, "op-1", entry.OperatorID)
	assert.Equal(t, "proj-1", entry.ProjectID)
	assert.Equal(t, 20, entry.Scans)
	assert.Equal(t, baseTime, entry.EntryDate, "date defaults to creation time")
	assert.Equal(t, domain.StatusEntered, entry.Status)
	assert.Empty(t, entry.Approvals)
	assert.NotNil(t, entry.Approvals)
	assert.Equal(t, 1, entry.Version)

	require.Len(t, entry.AuditTrail, 1)
	created := entry.AuditTrail[0]
	assert.Equal(t, 1, created.Seq)
	assert.Equal(t, workflow.ActionCreated, created.Action)
	assert.Equal(t, "op-1", created.ActorID)
	assert.Equal(t, "Entry created with 20 scans", created.Details)
}

func TestNewScanEntry_UsesSuppliedDate(t *testing.T) {
	logical := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	entry, err := workflow.NewScanEntry("op-1", activeProject(), 5, &logical, baseTime)
	require.NoError(t, err)
	assert.Equal(t, logical, entry.EntryDate)
	assert.Equal(t, baseTime, entry.CreatedAt)
}

func TestNewScanEntry_Validation(t *testing.T) {
	inactive := activeProject()
	inactive.IsActive = false

	tests := []struct {
		name    string
		op      string
		project *domain.Project
		scans   int
	}{
		{"zero scans", "op-1", activeProject(), 0},
		{"negative scans", "op-1", activeProject(), -3},
		{"missing project", "op-1", nil, 10},
		{"inactive project", "op-1", inactive, 10},
		{"missing operator", "", activeProject(), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := workflow.NewScanEntry(tt.op, tt.project, tt.scans, nil, baseTime)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestAppendAudit_MonotonicTimestamps(t *testing.T) {
	entry := newEntry(t)
	first := entry.AuditTrail[0]

	workflow.AppendAudit(&entry, "Note", "admin-1", "clock stepped back", baseTime.Add(-time.Hour))
	workflow.AppendAudit(&entry, "Note", "admin-1", "later", baseTime.Add(time.Hour))

	require.Len(t, entry.AuditTrail, 3)
	assert.Equal(t, first, entry.AuditTrail[0])
	assert.Equal(t, baseTime, entry.AuditTrail[1].Timestamp, "older timestamp is raised to the previous record")
	assert.Equal(t, baseTime.Add(time.Hour), entry.AuditTrail[2].Timestamp)
	for i, rec := range entry.AuditTrail {
		assert.Equal(t, i+1, rec.Seq)
		if i > 0 {
			assert.False(t, rec.Timestamp.Before(entry.AuditTrail[i-1].Timestamp))
		}
	}
}
