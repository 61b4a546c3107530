// Package memory provides process-local implementations of the repository
// ports. Data is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
)

// Store keeps every entity in maps guarded by a single RWMutex. Values are
// copied on the way in and out so callers never share state with the store.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]domain.ScanEntry
	projects map[string]domain.Project
	staff    map[string]domain.Staff
	payments map[string]domain.Payment
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries:  make(map[string]domain.ScanEntry),
		projects: make(map[string]domain.Project),
		staff:    make(map[string]domain.Staff),
		payments: make(map[string]domain.Payment),
	}
}

var (
	_ portsrepo.ScanEntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade   = (*Store)(nil)
	_ portsrepo.StaffRepositoryFacade     = (*Store)(nil)
	_ portsrepo.PaymentRepositoryFacade   = (*Store)(nil)
)

// NewRepositoryProvider wires one Store behind every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ScanEntryRepo: store,
		ProjectRepo:   store,
		StaffRepo:     store,
		PaymentRepo:   store,
	}
}

// --- Scan entries ---

func (s *Store) SaveScanEntry(_ context.Context, entry domain.ScanEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[entry.EntryID]; exists {
		return fmt.Errorf("%w: scan entry %s already exists", apperrors.ErrDuplicate, entry.EntryID)
	}
	s.entries[entry.EntryID] = entry.Clone()
	return nil
}

func (s *Store) UpdateScanEntry(_ context.Context, entry domain.ScanEntry, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.entries[entry.EntryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("%w: scan entry %s is at version %d, expected %d",
			apperrors.ErrConflict, entry.EntryID, stored.Version, expectedVersion)
	}

	next := stored.Clone()
	lastSeq := 0
	if n := len(next.AuditTrail); n > 0 {
		lastSeq = next.AuditTrail[n-1].Seq
	}
	for _, rec := range entry.AuditTrail {
		if rec.Seq > lastSeq {
			next.AuditTrail = append(next.AuditTrail, rec)
		}
	}
	next.Status = entry.Status
	next.Approvals = entry.Clone().Approvals
	next.LastUpdatedAt = entry.LastUpdatedAt
	next.LastUpdatedBy = entry.LastUpdatedBy
	next.Version = expectedVersion + 1
	s.entries[entry.EntryID] = next
	return nil
}

func (s *Store) FindScanEntryByID(_ context.Context, entryID string) (*domain.ScanEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := e.Clone()
	return &cp, nil
}

func (s *Store) ListScanEntriesByStatuses(_ context.Context, statuses []domain.EntryStatus) ([]domain.ScanEntry, error) {
	wanted := make(map[domain.EntryStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}
	return s.filterEntries(func(e domain.ScanEntry) bool { return wanted[e.Status] }), nil
}

func (s *Store) ListUnlockedScanEntries(_ context.Context) ([]domain.ScanEntry, error) {
	return s.filterEntries(func(e domain.ScanEntry) bool { return e.Status != domain.StatusLocked }), nil
}

func (s *Store) ListScanEntriesByOperator(_ context.Context, operatorID string) ([]domain.ScanEntry, error) {
	return s.filterEntries(func(e domain.ScanEntry) bool { return e.OperatorID == operatorID }), nil
}

// filterEntries snapshots matching entries under one read lock, newest entry date first.
func (s *Store) filterEntries(keep func(domain.ScanEntry) bool) []domain.ScanEntry {
	s.mu.RLock()
	out := make([]domain.ScanEntry, 0)
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.After(out[j].EntryDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].EntryID < out[j].EntryID
	})
	return out
}

// --- Projects ---

func (s *Store) SaveProject(_ context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.projects {
		if id != project.ProjectID && p.Name == project.Name {
			return fmt.Errorf("%w: project named %s already exists", apperrors.ErrDuplicate, project.Name)
		}
	}
	if existing, ok := s.projects[project.ProjectID]; ok {
		project.CreatedAt = existing.CreatedAt
		project.CreatedBy = existing.CreatedBy
		project.Version = existing.Version + 1
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *Store) FindProjectByID(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *Store) FindProjectsByIDs(_ context.Context, projectIDs []string) (map[string]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Project, len(projectIDs))
	for _, id := range projectIDs {
		if p, ok := s.projects[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *Store) ListProjects(_ context.Context, activeOnly bool) ([]domain.Project, error) {
	s.mu.RLock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --- Staff ---

func (s *Store) SaveStaff(_ context.Context, staff domain.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.staff {
		if id != staff.StaffID && st.Mobile == staff.Mobile {
			return fmt.Errorf("%w: staff with mobile %s already exists", apperrors.ErrDuplicate, staff.Mobile)
		}
	}
	if existing, ok := s.staff[staff.StaffID]; ok {
		staff.CreatedAt = existing.CreatedAt
		staff.CreatedBy = existing.CreatedBy
		staff.Version = existing.Version + 1
	}
	s.staff[staff.StaffID] = copyStaff(staff)
	return nil
}

func (s *Store) FindStaffByID(_ context.Context, staffID string) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[staffID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := copyStaff(st)
	return &cp, nil
}

func (s *Store) FindStaffByMobile(_ context.Context, mobile string) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.staff {
		if st.Mobile == mobile {
			cp := copyStaff(st)
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindStaffByIDs(_ context.Context, staffIDs []string) (map[string]domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Staff, len(staffIDs))
	for _, id := range staffIDs {
		if st, ok := s.staff[id]; ok {
			out[id] = copyStaff(st)
		}
	}
	return out, nil
}

func copyStaff(st domain.Staff) domain.Staff {
	if st.ProjectID != nil {
		projectID := *st.ProjectID
		st.ProjectID = &projectID
	}
	return st
}

// --- Payments ---

func (s *Store) SavePayment(_ context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payments[payment.PaymentID]; exists {
		return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
	}
	s.payments[payment.PaymentID] = payment
	return nil
}

func (s *Store) ListPayments(_ context.Context) ([]domain.Payment, error) {
	return s.filterPayments(func(domain.Payment) bool { return true }), nil
}

func (s *Store) ListPaymentsByStaff(_ context.Context, staffID string) ([]domain.Payment, error) {
	return s.filterPayments(func(p domain.Payment) bool { return p.StaffID == staffID }), nil
}

func (s *Store) filterPayments(keep func(domain.Payment) bool) []domain.Payment {
	s.mu.RLock()
	out := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PaymentDate.Equal(out[j].PaymentDate) {
			return out[i].PaymentDate.After(out[j].PaymentDate)
		}
		return out[i].PaymentID < out[j].PaymentID
	})
	return out
}
