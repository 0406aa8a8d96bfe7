package worker

import "time"

type ProfileResponse struct {
	ID           string     `json:"id"`
	RUT          string     `json:"rut"`
	FirstNames   string     `json:"nombres"`
	LastNames    string     `json:"apellidos"`
	HireDate     *time.Time `json:"fecha_ingreso,omitempty"`
	Position     *string    `json:"cargo,omitempty"`
	Area         *string    `json:"area_trabajador,omitempty"`
	ContractType string     `json:"tipo_contrato"`
	Email        *string    `json:"correo,omitempty"`
	Status       string     `json:"estado"`
	CompanyID    *string    `json:"empresa_id,omitempty"`
	CompanyName  *string    `json:"empresa,omitempty"`
	ShiftName    *string    `json:"turno,omitempty"`
}

func ToProfileResponse(w Worker) ProfileResponse {
	resp := ProfileResponse{
		ID:           w.ID,
		RUT:          w.RUT,
		FirstNames:   w.FirstNames,
		LastNames:    w.LastNames,
		HireDate:     w.HireDate,
		Position:     w.Position,
		Area:         w.Area,
		ContractType: string(w.ContractType),
		Email:        w.Email,
		Status:       string(w.Status),
		CompanyID:    w.CompanyID,
		CompanyName:  w.CompanyName,
	}
	if w.Shift != nil {
		resp.ShiftName = &w.Shift.Name
	}
	return resp
}
