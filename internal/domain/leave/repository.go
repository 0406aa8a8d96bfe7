package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns the request with worker and company joined.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	ListByWorker(ctx context.Context, workerID string) ([]LeaveRequest, error)

	// List returns requests visible through the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	// Resolve transitions a pending request to the given terminal status.
	// Returns ErrAlreadyResolved when the request is no longer pending; the
	// pending precondition is enforced in the same statement so concurrent
	// resolvers cannot both win.
	Resolve(ctx context.Context, id string, status Status, resolvedBy string, resolvedAt time.Time) error
}

// ListFilter bounds visibility to the caller's authorized companies with an
// optional single-company narrowing.
type ListFilter struct {
	CompanyIDs []string
	CompanyID  *string
}
