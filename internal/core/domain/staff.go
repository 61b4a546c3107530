package domain

// StaffStatus is the account state of a staff member. Only active accounts may act.
type StaffStatus string

const (
	StaffPending  StaffStatus = "pending"
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

// BankDetails holds the account a staff member is paid into.
type BankDetails struct {
	AccountNo string `json:"accountNo"`
	IFSCCode  string `json:"ifscCode"`
}

// Staff represents an operator or manager of the scanning operation.
type Staff struct {
	StaffID      string      `json:"staffID"` // Primary Key (UUID)
	Name         string      `json:"name"`
	Mobile       string      `json:"mobile"` // Unique, used as login id
	EmployeeID   string      `json:"employeeID"`
	ScannerID    string      `json:"scannerID"`
	PANNumber    string      `json:"panNumber"`
	BankDetails  BankDetails `json:"bankDetails"`
	Address      string      `json:"address"`
	Center       string      `json:"center"`
	ProjectID    *string     `json:"projectID,omitempty"` // Optional assignment
	Status       StaffStatus `json:"status"`
	Role         Role        `json:"role"`
	PasswordHash string      `json:"-"`
	AuditFields
}

// IsActive reports whether the account may perform any operation.
func (s Staff) IsActive() bool {
	return s.Status == StaffActive
}

// Actor returns the projection of the staff member consumed by the workflow engine.
func (s Staff) Actor() Actor {
	return Actor{ID: s.StaffID, Name: s.Name, Role: s.Role, Status: s.Status}
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   Role        `json:"role"`
	Status StaffStatus `json:"status"`
}

// IsActive reports whether the actor's account is active.
func (a Actor) IsActive() bool {
	return a.Status == StaffActive
}

// DisplayName is used in audit details.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
