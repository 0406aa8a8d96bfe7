package vacation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req VacationRequest) (VacationRequest, error)
	GetByID(ctx context.Context, id string) (VacationRequest, error)
	ListByWorker(ctx context.Context, workerID string) ([]VacationRequest, error)
	List(ctx context.Context, filter ListFilter) ([]VacationRequest, error)

	// Resolve transitions a pending request to a terminal status; the pending
	// precondition is enforced in the same statement.
	Resolve(ctx context.Context, id string, status Status, resolvedBy string, resolvedAt time.Time) error
}

type ListFilter struct {
	CompanyIDs []string
	CompanyID  *string
}
