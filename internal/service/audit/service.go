package audit

import (
	"context"
	"log/slog"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
)

// Recorder appends audit entries for privileged mutations. Recording must
// never abort the operation it describes, so failures are logged and
// swallowed.
type Recorder interface {
	Record(ctx context.Context, entry audit.Entry)
}

type Service interface {
	Recorder

	// List returns audit entries visible to the caller, newest first. Only
	// admin_rrhh and fiscalizador may read the log.
	List(ctx context.Context, u *user.User, companyID *string) ([]audit.EntryResponse, error)
}

type AuditService struct {
	repo   audit.Repository
	access access.Service
	logger *slog.Logger
}

func NewAuditService(repo audit.Repository, accessService access.Service, logger *slog.Logger) *AuditService {
	return &AuditService{repo: repo, access: accessService, logger: logger}
}

// Record implements Recorder.
func (s *AuditService) Record(ctx context.Context, entry audit.Entry) {
	if _, err := s.repo.Create(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to append audit entry",
			slog.String("action", entry.Action),
			slog.String("model", entry.Model),
			slog.String("record_id", entry.RecordID),
			slog.Any("error", err),
		)
	}
}

// List implements Service.
func (s *AuditService) List(ctx context.Context, u *user.User, companyID *string) ([]audit.EntryResponse, error) {
	if u.Role != user.RoleHRAdmin && u.Role != user.RoleAuditor {
		return nil, audit.ErrRoleNotAllowed
	}

	allowed, err := s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, audit.ListFilter{CompanyIDs: allowed, CompanyID: companyID})
	if err != nil {
		return nil, err
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToResponse(e))
	}
	return responses, nil
}
