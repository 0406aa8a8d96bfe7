package vacation

import "time"

type Status string

const (
	StatusPending  Status = "pendiente"
	StatusAccepted Status = "aceptado"
	StatusRejected Status = "rechazado"
)

// VacationRequest is a worker's vacation petition. Like leave requests, Days
// is derived from the inclusive range and the resolved states are terminal.
type VacationRequest struct {
	ID         string
	WorkerID   string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Status     Status
	CreatedBy  string
	CreatedAt  time.Time
	ResolvedBy *string
	ResolvedAt *time.Time

	WorkerFirstNames *string
	WorkerLastNames  *string
	CompanyID        *string
	CompanyName      *string
}

// DayCount returns the inclusive day span of [start, end].
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
