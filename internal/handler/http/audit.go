package http

import (
	"log/slog"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	auditsvc "github.com/Neicx/Kivo-Asistencia/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService auditsvc.Service
}

func NewAuditHandler(auditService auditsvc.Service) AuditHandler {
	return &auditHandlerImpl{
		auditService: auditService,
	}
}

// List implements AuditHandler.
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	entries, err := h.auditService.List(r.Context(), u, companyIDQuery(r))
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
