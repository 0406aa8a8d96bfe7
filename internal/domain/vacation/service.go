package vacation

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, u *user.User, req CreateRequest) (VacationResponse, error)
	List(ctx context.Context, u *user.User, companyID *string) ([]VacationResponse, error)
	Resolve(ctx context.Context, u *user.User, id string, req ResolveRequest) (VacationResponse, error)
}
