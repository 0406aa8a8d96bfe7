package http

import (
	"log/slog"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	companysvc "github.com/Neicx/Kivo-Asistencia/internal/service/company"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Assigned(w http.ResponseWriter, r *http.Request)
	Shifts(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService companysvc.Service
}

func NewCompanyHandler(companyService companysvc.Service) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// List implements CompanyHandler.
func (h *companyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	companies, err := h.companyService.List(r.Context(), u)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Assigned implements CompanyHandler.
func (h *companyHandlerImpl) Assigned(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	companies, err := h.companyService.Assigned(r.Context(), u)
	if err != nil {
		slog.Error("Assigned service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Shifts implements CompanyHandler.
func (h *companyHandlerImpl) Shifts(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	shifts, err := h.companyService.Shifts(r.Context(), u, chi.URLParam(r, "empresa_id"))
	if err != nil {
		slog.Error("Shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}
