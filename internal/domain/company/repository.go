package company

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	ListByIDs(ctx context.Context, ids []string) ([]Company, error)
	ListShiftsByCompany(ctx context.Context, companyID string) ([]Shift, error)
}
