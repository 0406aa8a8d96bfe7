package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/vacation"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.Service
}

func NewVacationHandler(vacationService vacation.Service) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// Create implements VacationHandler.
func (h *vacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	var req vacation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vacationService.Create(r.Context(), u, req)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request registered", created)
}

// List implements VacationHandler.
func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	requests, err := h.vacationService.List(r.Context(), u, companyIDQuery(r))
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Resolve implements VacationHandler.
func (h *vacationHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	var req vacation.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resolved, err := h.vacationService.Resolve(r.Context(), u, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Resolve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}
