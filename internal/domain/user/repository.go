package user

import (
	"context"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByRUT(ctx context.Context, rut string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserFields) error
	ExistsByRUTOrEmail(ctx context.Context, rut, email string) (bool, error)

	// ListAffiliations returns every company affiliation of the user.
	ListAffiliations(ctx context.Context, userID string) ([]CompanyAffiliation, error)

	// ReplaceAffiliations drops the user's affiliations and installs the given
	// set atomically.
	ReplaceAffiliations(ctx context.Context, userID string, affiliations []CompanyAffiliation) error

	// ListByCompanies returns users affiliated with any of the given companies,
	// optionally narrowed to a single company.
	ListByCompanies(ctx context.Context, companyIDs []string, companyID *string) ([]User, error)
}

// UpdateUserFields carries a partial user update; nil fields are left untouched.
type UpdateUserFields struct {
	ID           string
	Email        *string
	PasswordHash *string
	Role         *Role
	Status       *Status
	WorkerID     *string
}
