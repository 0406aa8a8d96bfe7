package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/leave"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler. A multipart body carries the request JSON
// in the 'data' field plus an optional 'adjunto' file; a plain JSON body has
// no attachment.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	var req leave.CreateRequest
	var attachment *leave.Attachment

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Max 10MB
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Create parse multipart error", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}
		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Create unmarshal error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("adjunto")
		if err != nil && err != http.ErrMissingFile {
			slog.Error("Create file error", "error", err)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
		if err == nil {
			defer file.Close()
			attachment = &leave.Attachment{FileName: fileHeader.Filename, Content: file}
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), u, req, attachment)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request registered", created)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	requests, err := h.leaveService.List(r.Context(), u, companyIDQuery(r))
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Resolve implements LeaveHandler.
func (h *leaveHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrAccessDenied)
		return
	}

	var req leave.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resolved, err := h.leaveService.Resolve(r.Context(), u, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Resolve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}
