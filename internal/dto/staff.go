package dto

import "github.com/SscSPs/scan_payroll_app/internal/core/domain"

// StaffResponse is the public view of a staff member. Bank and PAN details are
// only exposed through payroll.
type StaffResponse struct {
	StaffID    string             `json:"staffID"`
	Name       string             `json:"name"`
	Mobile     string             `json:"mobile"`
	EmployeeID string             `json:"employeeID,omitempty"`
	Center     string             `json:"center"`
	ProjectID  *string            `json:"projectID,omitempty"`
	Role       domain.Role        `json:"role"`
	Status     domain.StaffStatus `json:"status"`
}

// ToStaffResponse converts a domain.Staff to a StaffResponse DTO
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:    s.StaffID,
		Name:       s.Name,
		Mobile:     s.Mobile,
		EmployeeID: s.EmployeeID,
		Center:     s.Center,
		ProjectID:  s.ProjectID,
		Role:       s.Role,
		Status:     s.Status,
	}
}

// ActorResponse is returned by the current-actor endpoint.
type ActorResponse struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Role   domain.Role        `json:"role"`
	Status domain.StaffStatus `json:"status"`
}

// ToActorResponse converts a domain.Actor to an ActorResponse DTO
func ToActorResponse(a *domain.Actor) ActorResponse {
	return ActorResponse{ID: a.ID, Name: a.Name, Role: a.Role, Status: a.Status}
}
