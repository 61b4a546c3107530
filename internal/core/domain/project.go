package domain

import "github.com/shopspring/decimal"

// Project is a scanning engagement carrying the per-scan billing rate.
type Project struct {
	ProjectID         string          `json:"projectID"` // Primary Key (UUID)
	Name              string          `json:"name"`      // Globally unique
	Center            string          `json:"center"`
	ScanRate          decimal.Decimal `json:"scanRate"`                    // Amount paid per scan, never negative
	ProductivityLimit *int            `json:"productivityLimit,omitempty"` // Advisory cap, not enforced
	IsActive          bool            `json:"isActive"`
	AuditFields
}
