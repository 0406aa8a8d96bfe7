package vacation

import (
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
)

const (
	ActionAccept = "aceptar"
	ActionReject = "rechazar"
)

type CreateRequest struct {
	StartDate string `json:"fecha_inicio"`
	EndDate   string `json:"fecha_fin"`
}

// Validate checks the request and returns the parsed date range.
func (r CreateRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "fecha_inicio", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "fecha_fin", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "fecha_fin", Message: "must not be before fecha_inicio"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

type ResolveRequest struct {
	Action string  `json:"accion"`
	Reason *string `json:"motivo,omitempty"`
}

func (r ResolveRequest) Validate() error {
	if r.Action != ActionAccept && r.Action != ActionReject {
		return validator.ValidationErrors{{Field: "accion", Message: "must be 'aceptar' or 'rechazar'"}}
	}
	return nil
}

type VacationResponse struct {
	ID          string     `json:"id"`
	WorkerID    string     `json:"trabajador_id"`
	WorkerName  *string    `json:"trabajador,omitempty"`
	CompanyName *string    `json:"empresa,omitempty"`
	StartDate   string     `json:"fecha_inicio"`
	EndDate     string     `json:"fecha_fin"`
	Days        int        `json:"dias"`
	Status      string     `json:"estado"`
	CreatedAt   time.Time  `json:"creado_en"`
	ResolvedBy  *string    `json:"resuelto_por,omitempty"`
	ResolvedAt  *time.Time `json:"resuelto_en,omitempty"`
}

func ToResponse(v VacationRequest) VacationResponse {
	resp := VacationResponse{
		ID:          v.ID,
		WorkerID:    v.WorkerID,
		CompanyName: v.CompanyName,
		StartDate:   v.StartDate.Format("2006-01-02"),
		EndDate:     v.EndDate.Format("2006-01-02"),
		Days:        v.Days,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
		ResolvedBy:  v.ResolvedBy,
		ResolvedAt:  v.ResolvedAt,
	}
	if v.WorkerFirstNames != nil && v.WorkerLastNames != nil {
		name := *v.WorkerFirstNames + " " + *v.WorkerLastNames
		resp.WorkerName = &name
	}
	return resp
}
