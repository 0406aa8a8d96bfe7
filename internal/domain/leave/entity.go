package leave

import "time"

type Type string

const (
	TypeMedical        Type = "licencia_medica"
	TypeAdministrative Type = "permiso_administrativo"
	TypeUnpaid         Type = "permiso_sin_goce"
)

// ValidType reports whether t is a known leave type.
func ValidType(t Type) bool {
	return t == TypeMedical || t == TypeAdministrative || t == TypeUnpaid
}

type Status string

const (
	StatusPending  Status = "pendiente"
	StatusAccepted Status = "aceptado"
	StatusRejected Status = "rechazado"
)

// LeaveRequest is a worker's leave petition. Days is always derived from the
// inclusive date range and recomputed on every save; accepted/rejected are
// terminal states.
type LeaveRequest struct {
	ID            string
	WorkerID      string
	Type          Type
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Reason        *string
	AttachmentURL *string
	Status        Status
	CreatedBy     string
	CreatedAt     time.Time
	ResolvedBy    *string
	ResolvedAt    *time.Time

	// Joined relations for responses and authorization.
	WorkerFirstNames *string
	WorkerLastNames  *string
	CompanyID        *string
	CompanyName      *string
}

// DayCount returns the inclusive day span of [start, end].
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
