package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/attendance"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	status, err := h.attendanceService.Status(r.Context(), u)
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.attendanceService.Mark(r.Context(), u, req)
	if err != nil {
		slog.Error("Mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock event registered", event)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	events, err := h.attendanceService.List(r.Context(), u, companyIDQuery(r))
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// companyIDQuery extracts the optional empresa_id narrowing filter.
func companyIDQuery(r *http.Request) *string {
	if v := r.URL.Query().Get("empresa_id"); v != "" {
		return &v
	}
	return nil
}
