package worker

import (
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
)

type ContractType string

const (
	ContractPerProject   ContractType = "contrato_por_obra"
	ContractFixedTerm    ContractType = "contrato_plazo_fijo"
	ContractPartTime     ContractType = "contrato_part_time"
	ContractIndefinite   ContractType = "contrato_indefinido"
	ContractForeigners   ContractType = "contrato_para_extranjeros"
)

type Status string

const (
	StatusActive   Status = "activo"
	StatusInactive Status = "inactivo"
)

// Worker is an employed person. A worker may or may not have login access;
// the user record, when present, links back via its worker id.
type Worker struct {
	ID           string
	CompanyID    *string
	RUT          string
	FirstNames   string
	LastNames    string
	HireDate     *time.Time
	Position     *string
	Area         *string
	ContractType ContractType
	Email        *string
	Status       Status
	ShiftID      *string
	CreatedAt    time.Time

	// Joined relations for responses.
	CompanyName *string
	Shift       *company.Shift
}

// FullName returns "nombres apellidos".
func (w Worker) FullName() string {
	return w.FirstNames + " " + w.LastNames
}
