package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/SscSPs/scan_payroll_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) entry(id string, date time.Time, status domain.EntryStatus) domain.ScanEntry {
	return domain.ScanEntry{
		EntryID:    id,
		OperatorID: "op-1",
		ProjectID:  "proj-1",
		Scans:      10,
		EntryDate:  date,
		Status:     status,
		Approvals:  map[domain.Stage]domain.Approval{},
		AuditTrail: []domain.AuditRecord{{Seq: 1, Action: "Created", ActorID: "op-1", Timestamp: s.now}},
		AuditFields: domain.AuditFields{
			CreatedAt: s.now,
			Version:   1,
		},
	}
}

func (s *StoreTestSuite) TestUpdateScanEntry_CompareAndSwap() {
	e := s.entry("e1", s.now, domain.StatusEntered)
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, e))

	next := e.Clone()
	next.Status = domain.StatusSupervisorVerified
	next.Approvals[domain.StageSupervisor] = domain.Approval{Approved: true, ApprovedBy: "sup-1", ApprovedAt: s.now}
	next.AuditTrail = append(next.AuditTrail, domain.AuditRecord{Seq: 2, Action: "Supervisor Verified", ActorID: "sup-1", Timestamp: s.now})

	s.Require().NoError(s.store.UpdateScanEntry(s.ctx, next, 1))

	stored, err := s.store.FindScanEntryByID(s.ctx, "e1")
	s.Require().NoError(err)
	s.Equal(2, stored.Version)
	s.Equal(domain.StatusSupervisorVerified, stored.Status)
	s.Len(stored.AuditTrail, 2)
	s.True(stored.IsApproved(domain.StageSupervisor))

	// A writer still holding version 1 loses.
	err = s.store.UpdateScanEntry(s.ctx, next, 1)
	s.ErrorIs(err, apperrors.ErrConflict)

	err = s.store.UpdateScanEntry(s.ctx, s.entry("nope", s.now, domain.StatusEntered), 1)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestUpdateScanEntry_AppendsOnlyUnseenAuditRecords() {
	e := s.entry("e1", s.now, domain.StatusEntered)
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, e))

	next := e.Clone()
	next.AuditTrail[0].Details = "rewritten"
	next.AuditTrail = append(next.AuditTrail, domain.AuditRecord{Seq: 2, Action: "Locked"})
	next.Status = domain.StatusLocked
	s.Require().NoError(s.store.UpdateScanEntry(s.ctx, next, 1))

	stored, err := s.store.FindScanEntryByID(s.ctx, "e1")
	s.Require().NoError(err)
	s.Require().Len(stored.AuditTrail, 2)
	s.Empty(stored.AuditTrail[0].Details, "stored audit records are never rewritten")
	s.Equal("Locked", stored.AuditTrail[1].Action)
}

func (s *StoreTestSuite) TestReturnedEntriesDoNotAliasStore() {
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, s.entry("e1", s.now, domain.StatusEntered)))

	got, err := s.store.FindScanEntryByID(s.ctx, "e1")
	s.Require().NoError(err)
	got.Approvals[domain.StageFinance] = domain.Approval{Approved: true}
	got.AuditTrail[0].Action = "tampered"

	again, err := s.store.FindScanEntryByID(s.ctx, "e1")
	s.Require().NoError(err)
	s.False(again.IsApproved(domain.StageFinance))
	s.Equal("Created", again.AuditTrail[0].Action)
}

func (s *StoreTestSuite) TestListsAreNewestFirst() {
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, s.entry("old", s.now.Add(-48*time.Hour), domain.StatusEntered)))
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, s.entry("new", s.now, domain.StatusEntered)))
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, s.entry("locked", s.now, domain.StatusLocked)))
	s.Require().NoError(s.store.SaveScanEntry(s.ctx, s.entry("approved", s.now.Add(-time.Hour), domain.StatusCenterApproved)))

	entered, err := s.store.ListScanEntriesByStatuses(s.ctx, []domain.EntryStatus{domain.StatusEntered})
	s.Require().NoError(err)
	s.Equal([]string{"new", "old"}, ids(entered))

	unlocked, err := s.store.ListUnlockedScanEntries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new", "approved", "old"}, ids(unlocked))

	mine, err := s.store.ListScanEntriesByOperator(s.ctx, "op-1")
	s.Require().NoError(err)
	s.Len(mine, 4)

	none, err := s.store.ListScanEntriesByOperator(s.ctx, "op-2")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreTestSuite) TestStaffAndProjectUniqueness() {
	s.Require().NoError(s.store.SaveStaff(s.ctx, domain.Staff{StaffID: "a", Mobile: "9876543210"}))
	err := s.store.SaveStaff(s.ctx, domain.Staff{StaffID: "b", Mobile: "9876543210"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	found, err := s.store.FindStaffByMobile(s.ctx, "9876543210")
	s.Require().NoError(err)
	s.Equal("a", found.StaffID)

	_, err = s.store.FindStaffByID(s.ctx, "zzz")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.store.SaveProject(s.ctx, domain.Project{ProjectID: "p1", Name: "Land Records", IsActive: true}))
	s.Require().NoError(s.store.SaveProject(s.ctx, domain.Project{ProjectID: "p2", Name: "Archive", IsActive: false}))
	err = s.store.SaveProject(s.ctx, domain.Project{ProjectID: "p3", Name: "Land Records"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	active, err := s.store.ListProjects(s.ctx, true)
	s.Require().NoError(err)
	s.Len(active, 1)
	all, err := s.store.ListProjects(s.ctx, false)
	s.Require().NoError(err)
	s.Equal("Archive", all[0].Name)

	byID, err := s.store.FindProjectsByIDs(s.ctx, []string{"p1", "missing"})
	s.Require().NoError(err)
	s.Len(byID, 1)
}

func TestUpdateScanEntry_ConcurrentWritersOneWins(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	base := domain.ScanEntry{EntryID: "e1", Status: domain.StatusEntered, Approvals: map[domain.Stage]domain.Approval{}, AuditFields: domain.AuditFields{Version: 1}}
	require.NoError(t, store.SaveScanEntry(ctx, base))

	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := base.Clone()
			next.Status = domain.StatusSupervisorVerified
			results[i] = store.UpdateScanEntry(ctx, next, 1)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, wins)
}

func ids(entries []domain.ScanEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.EntryID
	}
	return out
}
