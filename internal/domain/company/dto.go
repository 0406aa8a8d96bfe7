package company

type CompanyResponse struct {
	ID        string  `json:"id"`
	LegalName string  `json:"razon_social"`
	TaxID     string  `json:"rut_empresa"`
	Address   *string `json:"direccion,omitempty"`
	Commune   *string `json:"comuna,omitempty"`
	City      *string `json:"ciudad,omitempty"`
	Region    *string `json:"region,omitempty"`
}

type ShiftResponse struct {
	ID               string `json:"id"`
	Name             string `json:"nombre"`
	EntryTime        string `json:"hora_entrada"`
	ExitTime         string `json:"hora_salida"`
	ToleranceMinutes int    `json:"tolerancia_minutos"`
}

func ToCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		LegalName: c.LegalName,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Commune:   c.Commune,
		City:      c.City,
		Region:    c.Region,
	}
}

func ToShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:               s.ID,
		Name:             s.Name,
		EntryTime:        s.EntryTime,
		ExitTime:         s.ExitTime,
		ToleranceMinutes: s.ToleranceMinutes,
	}
}
