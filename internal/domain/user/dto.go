package user

import (
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
)

type CreateUserRequest struct {
	RUT        string   `json:"rut"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Role       string   `json:"rol"`
	WorkerID   *string  `json:"trabajador_id,omitempty"`
	CompanyIDs []string `json:"empresas_ids,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidRUT(r.RUT) {
		errs = append(errs, validator.ValidationError{Field: "rut", Message: "invalid RUT"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "rol", Message: "unknown role"})
	}
	for _, id := range r.CompanyIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "empresas_ids", Message: "invalid company id"})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest is a partial update; nil fields are untouched.
type UpdateUserRequest struct {
	Email      *string   `json:"email,omitempty"`
	Password   *string   `json:"password,omitempty"`
	Role       *string   `json:"rol,omitempty"`
	Status     *string   `json:"estado,omitempty"`
	WorkerID   *string   `json:"trabajador_id,omitempty"`
	CompanyIDs *[]string `json:"empresas_ids,omitempty"`
	Reason     *string   `json:"motivo,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != nil && !ValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "rol", Message: "unknown role"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusBlocked) {
		errs = append(errs, validator.ValidationError{Field: "estado", Message: "unknown status"})
	}
	if r.CompanyIDs != nil {
		for _, id := range *r.CompanyIDs {
			if !validator.IsValidUUID(id) {
				errs = append(errs, validator.ValidationError{Field: "empresas_ids", Message: "invalid company id"})
				break
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AffiliationResponse struct {
	CompanyID   string  `json:"empresa_id"`
	CompanyName *string `json:"empresa,omitempty"`
	Role        string  `json:"rol"`
}

type WorkerSummary struct {
	ID         string  `json:"id"`
	FirstNames string  `json:"nombres"`
	LastNames  string  `json:"apellidos"`
	Position   *string `json:"cargo,omitempty"`
}

type UserResponse struct {
	ID           string                `json:"id"`
	RUT          string                `json:"rut"`
	Email        string                `json:"email"`
	Role         string                `json:"rol"`
	Status       string                `json:"estado"`
	Worker       *WorkerSummary        `json:"trabajador,omitempty"`
	Affiliations []AffiliationResponse `json:"empresas,omitempty"`
}

// ToResponse builds the outward representation of a user.
func ToResponse(u User, affiliations []CompanyAffiliation) UserResponse {
	resp := UserResponse{
		ID:     u.ID,
		RUT:    u.RUT,
		Email:  u.Email,
		Role:   string(u.Role),
		Status: string(u.Status),
	}
	if u.Worker != nil {
		resp.Worker = &WorkerSummary{
			ID:         u.Worker.ID,
			FirstNames: u.Worker.FirstNames,
			LastNames:  u.Worker.LastNames,
			Position:   u.Worker.Position,
		}
	}
	for _, a := range affiliations {
		resp.Affiliations = append(resp.Affiliations, AffiliationResponse{
			CompanyID:   a.CompanyID,
			CompanyName: a.CompanyName,
			Role:        string(a.Role),
		})
	}
	return resp
}
