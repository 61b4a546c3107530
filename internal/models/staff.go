package models

import "database/sql"

// Staff is the persisted form of a staff account.
type Staff struct {
	StaffID       string         `db:"staff_id"`
	Name          string         `db:"name"`
	Mobile        string         `db:"mobile"`
	EmployeeID    string         `db:"employee_id"`
	ScannerID     string         `db:"scanner_id"`
	PANNumber     string         `db:"pan_number"`
	BankAccountNo string         `db:"bank_account_no"`
	BankIFSCCode  string         `db:"bank_ifsc_code"`
	Address       string         `db:"address"`
	Center        string         `db:"center"`
	ProjectID     sql.NullString `db:"project_id"` // Nullable
	Status        string         `db:"status"`
	Role          string         `db:"role"`
	PasswordHash  string         `db:"password_hash"`
	AuditFields
}
