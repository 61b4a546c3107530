// Package seed loads the starter accounts and project a fresh installation needs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/scan_payroll_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account describes one seeded staff member.
type Account struct {
	Name   string
	Mobile string
	Role   domain.Role
}

// DefaultAccounts holds one active account per role.
var DefaultAccounts = []Account{
	{Name: "Admin", Mobile: "9000000001", Role: domain.RoleAdmin},
	{Name: "Finance Manager", Mobile: "9000000002", Role: domain.RoleFinanceManager},
	{Name: "Project Manager", Mobile: "9000000003", Role: domain.RoleProjectManager},
	{Name: "Center Manager", Mobile: "9000000004", Role: domain.RoleCenterManager},
	{Name: "Supervisor", Mobile: "9000000005", Role: domain.RoleSupervisor},
	{Name: "Scan Operator", Mobile: "9000000006", Role: domain.RoleStaff},
}

// DefaultProjectName is the sample project created next to the accounts.
const DefaultProjectName = "Sample Digitization"

// Result lists what Run created.
type Result struct {
	Password string
	Staff    []domain.Staff
	Project  *domain.Project
}

// Run creates DefaultAccounts sharing one password and the sample project.
// An empty password is replaced by a random one, returned in the result.
// Accounts whose mobile is already registered are left alone.
func Run(ctx context.Context, repos portsrepo.RepositoryProvider, password string, now time.Time, logger *slog.Logger) (*Result, error) {
	if password == "" {
		generated, err := utils.GenerateSecureRandomString(12)
		if err != nil {
			return nil, fmt.Errorf("generating seed password: %w", err)
		}
		password = generated
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	res := &Result{Password: password}
	for _, acct := range DefaultAccounts {
		existing, err := repos.StaffRepo.FindStaffByMobile(ctx, acct.Mobile)
		if err == nil {
			logger.Info("Seed account already present", slog.String("mobile", acct.Mobile), slog.String("staff_id", existing.StaffID))
			res.Staff = append(res.Staff, *existing)
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("looking up seed account %s: %w", acct.Mobile, err)
		}
		staff := domain.Staff{
			StaffID:      uuid.NewString(),
			Name:         acct.Name,
			Mobile:       acct.Mobile,
			Center:       "Main",
			Status:       domain.StaffActive,
			Role:         acct.Role,
			PasswordHash: hash,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "seed",
				LastUpdatedAt: now,
				LastUpdatedBy: "seed",
				Version:       1,
			},
		}
		if err := repos.StaffRepo.SaveStaff(ctx, staff); err != nil {
			return nil, fmt.Errorf("saving seed account %s: %w", acct.Mobile, err)
		}
		logger.Info("Seed account created", slog.String("mobile", acct.Mobile), slog.String("role", string(acct.Role)))
		res.Staff = append(res.Staff, staff)
	}

	projects, err := repos.ProjectRepo.ListProjects(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	for i := range projects {
		if projects[i].Name == DefaultProjectName {
			res.Project = &projects[i]
			return res, nil
		}
	}

	project := domain.Project{
		ProjectID: uuid.NewString(),
		Name:      DefaultProjectName,
		Center:    "Main",
		ScanRate:  decimal.RequireFromString("0.50"),
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed",
			Version:       1,
		},
	}
	if err := repos.ProjectRepo.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("saving seed project: %w", err)
	}
	logger.Info("Seed project created", slog.String("project_id", project.ProjectID))
	res.Project = &project
	return res, nil
}
