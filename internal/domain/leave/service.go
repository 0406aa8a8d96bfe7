package leave

import (
	"context"
	"io"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
)

// Attachment is an optional justification file uploaded with a leave request.
type Attachment struct {
	FileName string
	Content  io.Reader
}

type Service interface {
	// Create registers a leave request for the caller's own worker.
	Create(ctx context.Context, u *user.User, req CreateRequest, attachment *Attachment) (LeaveResponse, error)

	// List returns requests visible to the caller.
	List(ctx context.Context, u *user.User, companyID *string) ([]LeaveResponse, error)

	// Resolve accepts or rejects a pending request.
	Resolve(ctx context.Context, u *user.User, id string, req ResolveRequest) (LeaveResponse, error)
}
