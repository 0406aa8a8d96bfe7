package worker

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
)

type Service interface {
	// Profile returns a worker's profile when the caller may see it. Workers
	// outside the caller's scope look exactly like missing ones.
	Profile(ctx context.Context, u *user.User, workerID string) (worker.ProfileResponse, error)
}

type WorkerService struct {
	repo   worker.Repository
	access access.Service
}

func NewWorkerService(repo worker.Repository, accessService access.Service) *WorkerService {
	return &WorkerService{repo: repo, access: accessService}
}

// Profile implements Service.
func (s *WorkerService) Profile(ctx context.Context, u *user.User, workerID string) (worker.ProfileResponse, error) {
	if u.Role == user.RoleWorker {
		if u.WorkerID == nil || *u.WorkerID != workerID {
			return worker.ProfileResponse{}, worker.ErrWorkerNotFound
		}
		w, err := s.repo.GetByID(ctx, workerID)
		if err != nil {
			return worker.ProfileResponse{}, err
		}
		return worker.ToProfileResponse(w), nil
	}

	allowed, err := s.access.AuthorizedCompanyIDs(ctx, u, user.RolesWithCompanies)
	if err != nil {
		return worker.ProfileResponse{}, err
	}

	w, err := s.repo.GetByIDInCompanies(ctx, workerID, allowed)
	if err != nil {
		return worker.ProfileResponse{}, err
	}
	return worker.ToProfileResponse(w), nil
}
