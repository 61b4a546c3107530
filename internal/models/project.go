package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Project is the persisted form of a scanning project.
type Project struct {
	ProjectID         string          `db:"project_id"`
	Name              string          `db:"name"`
	Center            string          `db:"center"`
	ScanRate          decimal.Decimal `db:"scan_rate"`
	ProductivityLimit sql.NullInt32   `db:"productivity_limit"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
