package attendance

import "time"

type MarkRequest struct {
	Type string `json:"tipo_marca"`
}

type WorkerSummary struct {
	ID         string  `json:"id"`
	FirstNames string  `json:"nombre"`
	LastNames  string  `json:"apellidos"`
	Position   *string `json:"cargo,omitempty"`
}

type ShiftSummary struct {
	Name      *string `json:"nombre"`
	EntryTime *string `json:"hora_entrada"`
	ExitTime  *string `json:"hora_salida"`
}

type CompanySummary struct {
	Name *string `json:"nombre"`
}

// StatusResponse reports the worker's attendance state within the current
// company-local day.
type StatusResponse struct {
	EntranceOpen     bool           `json:"tiene_entrada_activa"`
	RemainingSeconds int            `json:"segundos_restantes"`
	ServerTime       string         `json:"hora_servidor"`
	ShiftEndTime     *string        `json:"hora_fin_jornada"`
	Worker           WorkerSummary  `json:"trabajador"`
	Shift            ShiftSummary   `json:"turno"`
	Company          CompanySummary `json:"empresa"`
}

type ClockEventResponse struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"trabajador_id"`
	WorkerName  *string   `json:"trabajador,omitempty"`
	CompanyName *string   `json:"empresa,omitempty"`
	Type        string    `json:"tipo_marca"`
	Timestamp   time.Time `json:"timestamp"`
	Hash        string    `json:"hash"`
}

func ToClockEventResponse(e ClockEvent) ClockEventResponse {
	resp := ClockEventResponse{
		ID:          e.ID,
		WorkerID:    e.WorkerID,
		CompanyName: e.CompanyName,
		Type:        string(e.Type),
		Timestamp:   e.Timestamp,
		Hash:        e.Hash,
	}
	if e.WorkerFirstNames != nil && e.WorkerLastNames != nil {
		name := *e.WorkerFirstNames + " " + *e.WorkerLastNames
		resp.WorkerName = &name
	}
	return resp
}
