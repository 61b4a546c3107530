package domain

import "time"

// AuditFields holds standard bookkeeping information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // StaffID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // StaffID reference
	Version       int       `json:"version"`       // Incremented on every persisted change
}
