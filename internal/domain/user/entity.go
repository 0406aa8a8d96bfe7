package user

import (
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
)

type Role string

const (
	RoleWorker      Role = "trabajador"     // clocks in/out, requests leave and vacations
	RoleHRAssistant Role = "asistente_rrhh" // resolves requests for assigned companies
	RoleHRAdmin     Role = "admin_rrhh"     // full HR management within assigned companies
	RoleAuditor     Role = "fiscalizador"   // read-only access to audit data
)

type Status string

const (
	StatusActive  Status = "activo"
	StatusBlocked Status = "bloqueado"
)

type User struct {
	ID           string
	WorkerID     *string
	RUT          string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	CreatedAt    time.Time

	// Joined worker record, nil when the user has no login-linked worker.
	Worker *worker.Worker
}

// IsActive reports whether the user may authenticate and act.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsHR reports whether the user holds one of the HR roles.
func (u *User) IsHR() bool {
	return RoleIn(u.Role, RolesHR)
}

// CompanyAffiliation links a user to a company with a per-company role.
// Unique per (user, company) pair.
type CompanyAffiliation struct {
	ID        string
	UserID    string
	CompanyID string
	Role      Role

	CompanyName *string
}
