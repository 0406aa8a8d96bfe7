package worker

import "context"

type Repository interface {
	// GetByID returns the worker with company and shift joined.
	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByIDInCompanies returns the worker only when its company is one of
	// companyIDs. Used by the scoped profile endpoint; out-of-scope workers
	// are indistinguishable from missing ones.
	GetByIDInCompanies(ctx context.Context, id string, companyIDs []string) (Worker, error)
}
