package company

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
)

type Service interface {
	// List returns the companies the caller manages through a privileged
	// affiliation.
	List(ctx context.Context, u *user.User) ([]company.CompanyResponse, error)

	// Assigned returns every company the caller can see, regardless of the
	// affiliation role.
	Assigned(ctx context.Context, u *user.User) ([]company.CompanyResponse, error)

	// Shifts returns the shift catalog of one authorized company.
	Shifts(ctx context.Context, u *user.User, companyID string) ([]company.ShiftResponse, error)
}

type CompanyService struct {
	repo   company.Repository
	access access.Service
}

func NewCompanyService(repo company.Repository, accessService access.Service) *CompanyService {
	return &CompanyService{repo: repo, access: accessService}
}

// List implements Service.
func (s *CompanyService) List(ctx context.Context, u *user.User) ([]company.CompanyResponse, error) {
	allowed, err := s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, allowed)
}

// Assigned implements Service.
func (s *CompanyService) Assigned(ctx context.Context, u *user.User) ([]company.CompanyResponse, error) {
	allowed, err := s.access.AuthorizedCompanyIDs(ctx, u, nil)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, allowed)
}

// Shifts implements Service. The shift catalog is management-facing, so the
// access check carries the privileged-role filter and workers are denied even
// for their own company.
func (s *CompanyService) Shifts(ctx context.Context, u *user.User, companyID string) ([]company.ShiftResponse, error) {
	ok, err := s.access.HasAccess(ctx, u, companyID, user.RolesWithCompanies)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, user.ErrCompanyNotAllowed
	}

	shifts, err := s.repo.ListShiftsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]company.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, company.ToShiftResponse(sh))
	}
	return responses, nil
}

func (s *CompanyService) respond(ctx context.Context, ids []string) ([]company.CompanyResponse, error) {
	if len(ids) == 0 {
		return []company.CompanyResponse{}, nil
	}
	companies, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToCompanyResponse(c))
	}
	return responses, nil
}
