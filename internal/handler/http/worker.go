package http

import (
	"log/slog"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	workersvc "github.com/Neicx/Kivo-Asistencia/internal/service/worker"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService workersvc.Service
}

func NewWorkerHandler(workerService workersvc.Service) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// Profile implements WorkerHandler.
func (h *workerHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	profile, err := h.workerService.Profile(r.Context(), u, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
