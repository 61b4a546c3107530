package workflow

import (
	"fmt"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
)

// Advance clears stage on entry for actor and returns the updated copy.
// The input entry is never modified, so a rejected call leaves nothing to undo.
//
// Checks run in a fixed order: missing entry, unknown stage, role capability,
// then the current status against the table.
func Advance(entry *domain.ScanEntry, stage domain.Stage, actor domain.Actor, now time.Time) (domain.ScanEntry, error) {
	if entry == nil {
		return domain.ScanEntry{}, apperrors.NewNotFoundError("scan entry", "")
	}

	t, ok := transitions[stage]
	if !ok {
		return domain.ScanEntry{}, apperrors.NewValidationFailedError(fmt.Sprintf("unknown approval stage %q", stage))
	}

	if !domain.RoleAuthorizedFor(actor.Role, stage) {
		return domain.ScanEntry{}, apperrors.NewForbiddenError(
			fmt.Sprintf("role %s is not authorized for the %s stage", actor.Role, stage))
	}

	if entry.Status != t.from {
		return domain.ScanEntry{}, apperrors.NewInvalidStateError(
			fmt.Sprintf("entry %s is %s; the %s stage requires %s", entry.EntryID, entry.Status, stage, t.from))
	}

	next := entry.Clone()
	next.Status = t.to
	next.Approvals[stage] = domain.Approval{
		Approved:   true,
		ApprovedBy: actor.ID,
		ApprovedAt: now,
	}
	AppendAudit(&next, t.action, actor.ID, fmt.Sprintf("%s by %s", t.action, actor.DisplayName()), now)
	next.LastUpdatedAt = now
	next.LastUpdatedBy = actor.ID
	return next, nil
}

// Lock freezes entry administratively. Approvals are left as they are and a
// single audit record is appended. A locked entry rejects every further
// transition, including another lock.
func Lock(entry *domain.ScanEntry, actor domain.Actor, reason string, now time.Time) (domain.ScanEntry, error) {
	if entry == nil {
		return domain.ScanEntry{}, apperrors.NewNotFoundError("scan entry", "")
	}
	if !domain.CanLockEntry(actor.Role) {
		return domain.ScanEntry{}, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not lock entries", actor.Role))
	}
	if entry.Status == domain.StatusLocked {
		return domain.ScanEntry{}, apperrors.NewInvalidStateError(fmt.Sprintf("entry %s is already locked", entry.EntryID))
	}

	details := fmt.Sprintf("Locked by %s from %s", actor.DisplayName(), entry.Status)
	if reason != "" {
		details += ": " + reason
	}

	next := entry.Clone()
	next.Status = domain.StatusLocked
	AppendAudit(&next, ActionLocked, actor.ID, details, now)
	next.LastUpdatedAt = now
	next.LastUpdatedBy = actor.ID
	return next, nil
}
