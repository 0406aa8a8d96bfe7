package auth

import "github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"

type LoginRequest struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RUT) {
		errs = append(errs, validator.ValidationError{Field: "rut", Message: "required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh"`
}

// UserSummary is the identity block embedded in the token response.
type UserSummary struct {
	RUT        string  `json:"rut"`
	Email      string  `json:"email"`
	Role       string  `json:"rol"`
	Status     string  `json:"estado"`
	WorkerID   *string `json:"trabajador_id,omitempty"`
	FirstNames *string `json:"nombre,omitempty"`
	LastNames  *string `json:"apellido,omitempty"`
	Position   *string `json:"cargo,omitempty"`
}

type TokenResponse struct {
	AccessToken           string      `json:"access"`
	AccessTokenExpiresAt  int64       `json:"access_expira_en"`
	RefreshToken          string      `json:"refresh"`
	RefreshTokenExpiresAt int64       `json:"refresh_expira_en"`
	User                  UserSummary `json:"user"`
}
