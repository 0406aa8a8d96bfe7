package attendance

import (
	"context"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
)

// Service defines the attendance operations available to handlers.
type Service interface {
	// Status derives the caller's attendance state for the current local day.
	Status(ctx context.Context, u *user.User) (StatusResponse, error)

	// Mark registers an entrance or exit for the caller's worker.
	Mark(ctx context.Context, u *user.User, req MarkRequest) (ClockEventResponse, error)

	// List returns clock events visible to the caller, optionally narrowed to
	// one company.
	List(ctx context.Context, u *user.User, companyID *string) ([]ClockEventResponse, error)
}
