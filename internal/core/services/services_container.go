package services

import (
	portsrepo "github.com/SscSPs/scan_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Workflow:     NewWorkflowService(repos.ScanEntryRepo, repos.ProjectRepo),
		Project:      NewProjectService(repos.ProjectRepo),
		Staff:        NewStaffService(repos.StaffRepo),
		TokenService: NewTokenService(cfg),
		Payroll:      NewPayrollService(repos.ScanEntryRepo, repos.ProjectRepo, repos.StaffRepo),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.StaffRepo),
	}
}
