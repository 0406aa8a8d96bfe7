package audit

import "time"

type EntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"usuario_id"`
	UserEmail   *string   `json:"usuario,omitempty"`
	CompanyID   *string   `json:"empresa_id,omitempty"`
	CompanyName *string   `json:"empresa,omitempty"`
	Action      string    `json:"accion"`
	Model       string    `json:"modelo_afectado"`
	RecordID    string    `json:"registro_id"`
	Reason      *string   `json:"motivo,omitempty"`
	CreatedAt   time.Time `json:"fecha"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserEmail:   e.UserEmail,
		CompanyID:   e.CompanyID,
		CompanyName: e.CompanyName,
		Action:      e.Action,
		Model:       e.Model,
		RecordID:    e.RecordID,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt,
	}
}
