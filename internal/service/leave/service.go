package leave

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/leave"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	auditsvc "github.com/Neicx/Kivo-Asistencia/internal/service/audit"
)

// attachmentSaver stores a justification file and returns its URL.
type attachmentSaver interface {
	SaveLeaveAttachment(ctx context.Context, fileName string, content io.Reader) (string, error)
}

type LeaveService struct {
	repo    leave.Repository
	access  access.Service
	auditor auditsvc.Recorder
	files   attachmentSaver
	now     func() time.Time
}

func NewLeaveService(repo leave.Repository, accessService access.Service, auditor auditsvc.Recorder, files attachmentSaver) *LeaveService {
	return &LeaveService{
		repo:    repo,
		access:  accessService,
		auditor: auditor,
		files:   files,
		now:     time.Now,
	}
}

// Create implements leave.Service.
func (s *LeaveService) Create(ctx context.Context, u *user.User, req leave.CreateRequest, attachment *leave.Attachment) (leave.LeaveResponse, error) {
	if u.Role != user.RoleWorker {
		return leave.LeaveResponse{}, leave.ErrOnlyWorkers
	}
	if u.WorkerID == nil {
		return leave.LeaveResponse{}, leave.ErrNoWorkerAssociated
	}

	start, end, err := req.Validate()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var attachmentURL *string
	if attachment != nil {
		url, err := s.files.SaveLeaveAttachment(ctx, attachment.FileName, attachment.Content)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		attachmentURL = &url
	}

	created, err := s.repo.Create(ctx, leave.LeaveRequest{
		WorkerID:      *u.WorkerID,
		Type:          leave.Type(req.Type),
		StartDate:     start,
		EndDate:       end,
		Days:          leave.DayCount(start, end),
		Reason:        req.Reason,
		AttachmentURL: attachmentURL,
		Status:        leave.StatusPending,
		CreatedBy:     u.ID,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	var companyID *string
	if u.Worker != nil {
		companyID = u.Worker.CompanyID
	}
	s.auditor.Record(ctx, audit.Entry{
		UserID:    u.ID,
		CompanyID: companyID,
		Action:    "crear_licencia",
		Model:     "licencia",
		RecordID:  created.ID,
	})

	return leave.ToResponse(created), nil
}

// List implements leave.Service.
func (s *LeaveService) List(ctx context.Context, u *user.User, companyID *string) ([]leave.LeaveResponse, error) {
	var requests []leave.LeaveRequest
	var err error

	if u.Role == user.RoleWorker {
		if u.WorkerID == nil {
			return nil, leave.ErrNoWorkerAssociated
		}
		requests, err = s.repo.ListByWorker(ctx, *u.WorkerID)
	} else {
		var allowed []string
		allowed, err = s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
		if err != nil {
			return nil, err
		}
		requests, err = s.repo.List(ctx, leave.ListFilter{CompanyIDs: allowed, CompanyID: companyID})
	}
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}
	return responses, nil
}

// Resolve implements leave.Service. The pending precondition lives in the
// store so two concurrent resolvers cannot both succeed.
func (s *LeaveService) Resolve(ctx context.Context, u *user.User, id string, req leave.ResolveRequest) (leave.LeaveResponse, error) {
	if !user.RoleIn(u.Role, user.RolesHR) {
		return leave.LeaveResponse{}, leave.ErrHRRoleRequired
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.CompanyID == nil {
		return leave.LeaveResponse{}, leave.ErrCompanyNotAuthorized
	}
	ok, err := s.access.HasAccess(ctx, u, *request.CompanyID, user.RolesHR)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !ok {
		return leave.LeaveResponse{}, leave.ErrCompanyNotAuthorized
	}

	status := leave.StatusAccepted
	if req.Action == leave.ActionReject {
		status = leave.StatusRejected
	}

	if err := s.repo.Resolve(ctx, id, status, u.ID, s.now()); err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditor.Record(ctx, audit.Entry{
		UserID:    u.ID,
		CompanyID: request.CompanyID,
		Action:    req.Action + "_licencia",
		Model:     "licencia",
		RecordID:  id,
		Reason:    req.Reason,
	})

	resolved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(resolved), nil
}
