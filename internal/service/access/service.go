package access

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
)

// Service is the access-scoping engine: it decides which companies a
// principal may see or act within.
type Service interface {
	// AuthorizedCompanyIDs computes the distinct company ids the user may act
	// within, optionally restricted to affiliations matching roleFilter.
	// For worker-role users the result has at most one element.
	AuthorizedCompanyIDs(ctx context.Context, u *user.User, roleFilter []user.Role) ([]string, error)

	// HasAccess answers a single-company authorization check. An empty
	// companyID is always denied.
	HasAccess(ctx context.Context, u *user.User, companyID string, roleFilter []user.Role) (bool, error)
}

type ScopeService struct {
	users user.Repository
}

func NewScopeService(users user.Repository) *ScopeService {
	return &ScopeService{users: users}
}

// AuthorizedCompanyIDs implements Service.
func (s *ScopeService) AuthorizedCompanyIDs(ctx context.Context, u *user.User, roleFilter []user.Role) ([]string, error) {
	if u.Role == user.RoleWorker {
		if u.Worker == nil || u.Worker.CompanyID == nil {
			return nil, nil
		}
		if len(roleFilter) > 0 && !user.RoleIn(user.RoleWorker, roleFilter) {
			return nil, nil
		}
		return []string{*u.Worker.CompanyID}, nil
	}

	affiliations, err := s.users.ListAffiliations(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var ids []string
	for _, a := range affiliations {
		if len(roleFilter) > 0 && !user.RoleIn(a.Role, roleFilter) {
			continue
		}
		if !seen[a.CompanyID] {
			seen[a.CompanyID] = true
			ids = append(ids, a.CompanyID)
		}
	}

	// Coverage for legacy rows: a non-worker user may still own a worker
	// record whose company never got an affiliation.
	if u.Worker != nil && u.Worker.CompanyID != nil && !seen[*u.Worker.CompanyID] {
		ids = append(ids, *u.Worker.CompanyID)
	}

	return ids, nil
}

// HasAccess implements Service. The worker-record fallback for non-worker
// roles applies only when no roleFilter is given: a caller requiring a
// specific privileged role must not be satisfied by it. These are two
// deliberate code paths, not one.
func (s *ScopeService) HasAccess(ctx context.Context, u *user.User, companyID string, roleFilter []user.Role) (bool, error) {
	if companyID == "" {
		return false, nil
	}

	if u.Role == user.RoleWorker {
		if u.Worker == nil || u.Worker.CompanyID == nil {
			return false, nil
		}
		if len(roleFilter) > 0 && !user.RoleIn(user.RoleWorker, roleFilter) {
			return false, nil
		}
		return *u.Worker.CompanyID == companyID, nil
	}

	affiliations, err := s.users.ListAffiliations(ctx, u.ID)
	if err != nil {
		return false, err
	}
	for _, a := range affiliations {
		if a.CompanyID != companyID {
			continue
		}
		if len(roleFilter) == 0 || user.RoleIn(a.Role, roleFilter) {
			return true, nil
		}
	}

	// Permissive legacy fallback, roleFilter-less checks only.
	if len(roleFilter) == 0 && u.Worker != nil && u.Worker.CompanyID != nil && *u.Worker.CompanyID == companyID {
		return true, nil
	}

	return false, nil
}
