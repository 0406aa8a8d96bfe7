package company

import "time"

type Company struct {
	ID        string
	LegalName string
	TaxID     string // RUT of the company, unique
	Address   *string
	Commune   *string
	City      *string
	Region    *string
	CreatedAt time.Time
}

// Shift defines a working schedule owned by a company. Entry/exit are local
// wall-clock times stored as "HH:MM:SS"; ToleranceMinutes is the lateness
// grace period.
type Shift struct {
	ID               string
	CompanyID        string
	Name             string
	EntryTime        string
	ExitTime         string
	ToleranceMinutes int
}
