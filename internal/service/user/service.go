package user

import (
	"context"
	"fmt"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	auditsvc "github.com/Neicx/Kivo-Asistencia/internal/service/audit"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	// Create provisions a login account. Restricted to admin_rrhh, and only
	// for companies the admin manages.
	Create(ctx context.Context, actor *user.User, req user.CreateUserRequest) (user.UserResponse, error)

	// Update applies a partial account update, same restrictions as Create.
	Update(ctx context.Context, actor *user.User, id string, req user.UpdateUserRequest) (user.UserResponse, error)

	// List returns accounts affiliated with the caller's companies.
	List(ctx context.Context, u *user.User, companyID *string) ([]user.UserResponse, error)
}

type UserService struct {
	repo    user.Repository
	access  access.Service
	auditor auditsvc.Recorder
}

func NewUserService(repo user.Repository, accessService access.Service, auditor auditsvc.Recorder) *UserService {
	return &UserService{repo: repo, access: accessService, auditor: auditor}
}

// Create implements Service.
func (s *UserService) Create(ctx context.Context, actor *user.User, req user.CreateUserRequest) (user.UserResponse, error) {
	if actor.Role != user.RoleHRAdmin {
		return user.UserResponse{}, user.ErrAdminRoleRequired
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.repo.ExistsByRUTOrEmail(ctx, req.RUT, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrRUTExists
	}

	if err := s.requireCompanies(ctx, actor, req.CompanyIDs); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, user.User{
		WorkerID:     req.WorkerID,
		RUT:          req.RUT,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		Status:       user.StatusActive,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	affiliations := buildAffiliations(created.ID, user.Role(req.Role), req.CompanyIDs)
	if len(affiliations) > 0 {
		if err := s.repo.ReplaceAffiliations(ctx, created.ID, affiliations); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to assign companies: %w", err)
		}
	}

	s.auditor.Record(ctx, audit.Entry{
		UserID:    actor.ID,
		CompanyID: firstCompany(req.CompanyIDs),
		Action:    "crear_usuario",
		Model:     "usuario",
		RecordID:  created.ID,
	})

	return s.respond(ctx, created.ID)
}

// Update implements Service.
func (s *UserService) Update(ctx context.Context, actor *user.User, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if actor.Role != user.RoleHRAdmin {
		return user.UserResponse{}, user.ErrAdminRoleRequired
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	fields := user.UpdateUserFields{
		ID:       target.ID,
		Email:    req.Email,
		WorkerID: req.WorkerID,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		fields.Role = &role
	}
	if req.Status != nil {
		status := user.Status(*req.Status)
		fields.Status = &status
	}

	if err := s.repo.Update(ctx, fields); err != nil {
		return user.UserResponse{}, err
	}

	if req.CompanyIDs != nil {
		if err := s.requireCompanies(ctx, actor, *req.CompanyIDs); err != nil {
			return user.UserResponse{}, err
		}
		role := target.Role
		if req.Role != nil {
			role = user.Role(*req.Role)
		}
		if err := s.repo.ReplaceAffiliations(ctx, target.ID, buildAffiliations(target.ID, role, *req.CompanyIDs)); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to reassign companies: %w", err)
		}
	}

	var auditCompany *string
	if req.CompanyIDs != nil {
		auditCompany = firstCompany(*req.CompanyIDs)
	}
	s.auditor.Record(ctx, audit.Entry{
		UserID:    actor.ID,
		CompanyID: auditCompany,
		Action:    "actualizar_usuario",
		Model:     "usuario",
		RecordID:  target.ID,
		Reason:    req.Reason,
	})

	return s.respond(ctx, target.ID)
}

// List implements Service.
func (s *UserService) List(ctx context.Context, u *user.User, companyID *string) ([]user.UserResponse, error) {
	allowed, err := s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListByCompanies(ctx, allowed, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, item := range users {
		responses = append(responses, user.ToResponse(item, nil))
	}
	return responses, nil
}

// requireCompanies verifies the actor manages every company in ids.
func (s *UserService) requireCompanies(ctx context.Context, actor *user.User, ids []string) error {
	for _, companyID := range ids {
		ok, err := s.access.HasAccess(ctx, actor, companyID, user.RolesWithCompanies)
		if err != nil {
			return err
		}
		if !ok {
			return user.ErrCompanyNotAllowed
		}
	}
	return nil
}

func firstCompany(companyIDs []string) *string {
	if len(companyIDs) == 0 {
		return nil
	}
	return &companyIDs[0]
}

func buildAffiliations(userID string, role user.Role, companyIDs []string) []user.CompanyAffiliation {
	affiliations := make([]user.CompanyAffiliation, 0, len(companyIDs))
	for _, companyID := range companyIDs {
		affiliations = append(affiliations, user.CompanyAffiliation{
			UserID:    userID,
			CompanyID: companyID,
			Role:      role,
		})
	}
	return affiliations
}

func (s *UserService) respond(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	affiliations, err := s.repo.ListAffiliations(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u, affiliations), nil
}
