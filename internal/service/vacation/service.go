package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/vacation"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	auditsvc "github.com/Neicx/Kivo-Asistencia/internal/service/audit"
)

type VacationService struct {
	repo    vacation.Repository
	access  access.Service
	auditor auditsvc.Recorder
	now     func() time.Time
}

func NewVacationService(repo vacation.Repository, accessService access.Service, auditor auditsvc.Recorder) *VacationService {
	return &VacationService{
		repo:    repo,
		access:  accessService,
		auditor: auditor,
		now:     time.Now,
	}
}

// Create implements vacation.Service.
func (s *VacationService) Create(ctx context.Context, u *user.User, req vacation.CreateRequest) (vacation.VacationResponse, error) {
	if u.Role != user.RoleWorker {
		return vacation.VacationResponse{}, vacation.ErrOnlyWorkers
	}
	if u.WorkerID == nil {
		return vacation.VacationResponse{}, vacation.ErrNoWorkerAssociated
	}

	start, end, err := req.Validate()
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	created, err := s.repo.Create(ctx, vacation.VacationRequest{
		WorkerID:  *u.WorkerID,
		StartDate: start,
		EndDate:   end,
		Days:      vacation.DayCount(start, end),
		Status:    vacation.StatusPending,
		CreatedBy: u.ID,
	})
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	var companyID *string
	if u.Worker != nil {
		companyID = u.Worker.CompanyID
	}
	s.auditor.Record(ctx, audit.Entry{
		UserID:    u.ID,
		CompanyID: companyID,
		Action:    "crear_vacaciones",
		Model:     "vacaciones",
		RecordID:  created.ID,
	})

	return vacation.ToResponse(created), nil
}

// List implements vacation.Service.
func (s *VacationService) List(ctx context.Context, u *user.User, companyID *string) ([]vacation.VacationResponse, error) {
	var requests []vacation.VacationRequest
	var err error

	if u.Role == user.RoleWorker {
		if u.WorkerID == nil {
			return nil, vacation.ErrNoWorkerAssociated
		}
		requests, err = s.repo.ListByWorker(ctx, *u.WorkerID)
	} else {
		var allowed []string
		allowed, err = s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
		if err != nil {
			return nil, err
		}
		requests, err = s.repo.List(ctx, vacation.ListFilter{CompanyIDs: allowed, CompanyID: companyID})
	}
	if err != nil {
		return nil, err
	}

	responses := make([]vacation.VacationResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, vacation.ToResponse(r))
	}
	return responses, nil
}

// Resolve implements vacation.Service.
func (s *VacationService) Resolve(ctx context.Context, u *user.User, id string, req vacation.ResolveRequest) (vacation.VacationResponse, error) {
	if !user.RoleIn(u.Role, user.RolesHR) {
		return vacation.VacationResponse{}, vacation.ErrHRRoleRequired
	}
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	if request.CompanyID == nil {
		return vacation.VacationResponse{}, vacation.ErrCompanyNotAuthorized
	}
	ok, err := s.access.HasAccess(ctx, u, *request.CompanyID, user.RolesHR)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if !ok {
		return vacation.VacationResponse{}, vacation.ErrCompanyNotAuthorized
	}

	status := vacation.StatusAccepted
	if req.Action == vacation.ActionReject {
		status = vacation.StatusRejected
	}

	if err := s.repo.Resolve(ctx, id, status, u.ID, s.now()); err != nil {
		return vacation.VacationResponse{}, err
	}

	s.auditor.Record(ctx, audit.Entry{
		UserID:    u.ID,
		CompanyID: request.CompanyID,
		Action:    req.Action + "_vacaciones",
		Model:     "vacaciones",
		RecordID:  id,
		Reason:    req.Reason,
	})

	resolved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	return vacation.ToResponse(resolved), nil
}
