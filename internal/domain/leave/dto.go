package leave

import (
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
)

const (
	ActionAccept = "aceptar"
	ActionReject = "rechazar"
)

type CreateRequest struct {
	Type      string  `json:"tipo"`
	StartDate string  `json:"fecha_inicio"`
	EndDate   string  `json:"fecha_fin"`
	Reason    *string `json:"motivo_detallado,omitempty"`
}

// Validate checks the request and returns the parsed date range. The day
// count is always server-derived from these dates.
func (r CreateRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors
	if !ValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "unknown leave type"})
	}
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

type LeaveResponse struct {
	ID            string     `json:"id"`
	WorkerID      string     `json:"trabajador_id"`
	WorkerName    *string    `json:"trabajador,omitempty"`
	CompanyName   *string    `json:"empresa,omitempty"`
	Type          string     `json:"tipo"`
	StartDate     string     `json:"fecha_inicio"`
	EndDate       string     `json:"fecha_fin"`
	Days          int        `json:"dias"`
	Reason        *string    `json:"motivo_detallado,omitempty"`
	AttachmentURL *string    `json:"adjunto_url,omitempty"`
	Status        string     `json:"estado"`
	CreatedAt     time.Time  `json:"creado_en"`
	ResolvedBy    *string    `json:"resuelto_por,omitempty"`
	ResolvedAt    *time.Time `json:"resuelto_en,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID,
		WorkerID:      l.WorkerID,
		CompanyName:   l.CompanyName,
		Type:          string(l.Type),
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Days:          l.Days,
		Reason:        l.Reason,
		AttachmentURL: l.AttachmentURL,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
		ResolvedBy:    l.ResolvedBy,
		ResolvedAt:    l.ResolvedAt,
	}
	if l.WorkerFirstNames != nil && l.WorkerLastNames != nil {
		name := *l.WorkerFirstNames + " " + *l.WorkerLastNames
		resp.WorkerName = &name
	}
	return resp
}
