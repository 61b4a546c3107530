package dto

import (
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	ActiveOnly bool `form:"activeOnly,default=true"`
}

// ProjectResponse is the API view of a project.
type ProjectResponse struct {
	ProjectID         string          `json:"projectID"`
	Name              string          `json:"name"`
	Center            string          `json:"center"`
	ScanRate          decimal.Decimal `json:"scanRate"`
	ProductivityLimit *int            `json:"productivityLimit,omitempty"`
	IsActive          bool            `json:"isActive"`
}

// ListProjectsResponse wraps a list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain.Project to its DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:         p.ProjectID,
		Name:              p.Name,
		Center:            p.Center,
		ScanRate:          p.ScanRate,
		ProductivityLimit: p.ProductivityLimit,
		IsActive:          p.IsActive,
	}
}

// ToListProjectsResponse converts a slice of projects to the list DTO
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return ListProjectsResponse{Projects: out}
}
