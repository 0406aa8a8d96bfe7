package audit

import "context"

type Repository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)

	// List returns entries visible through the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	CompanyIDs []string
	CompanyID  *string
}
