package response

import (
	"errors"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/attendance"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/auth"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/leave"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/vacation"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrRUTExists):
		Conflict(w, "RUT already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminRoleRequired):
		Forbidden(w, "admin_rrhh role required")
	case errors.Is(err, user.ErrAccessDenied):
		Forbidden(w, "Access denied")
	case errors.Is(err, user.ErrCompanyNotAllowed):
		Forbidden(w, "Company not authorized for this user")
	case errors.Is(err, user.ErrUserBlocked):
		Forbidden(w, "User is not active")
	case errors.Is(err, user.ErrWorkerNotLinkable):
		Conflict(w, "Worker already linked to another user")
	case errors.Is(err, user.ErrAffiliationInvalid):
		BadRequest(w, "Invalid company affiliation", nil)

	// Worker and company domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoWorkerAssociated):
		BadRequest(w, "User has no associated worker", nil)
	case errors.Is(err, attendance.ErrInvalidMarkType):
		BadRequest(w, "Unknown mark type", nil)
	case errors.Is(err, attendance.ErrEntranceAlreadyOpen):
		Conflict(w, "An entrance is already open for today")
	case errors.Is(err, attendance.ErrNoEntranceToday):
		Conflict(w, "No entrance registered today")
	case errors.Is(err, attendance.ErrExitAlreadyRegistered):
		Conflict(w, "Exit already registered for today's entrance")

	// Leave domain errors
	case errors.Is(err, leave.ErrNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOnlyWorkers):
		Forbidden(w, "Only workers can create leave requests")
	case errors.Is(err, leave.ErrNoWorkerAssociated):
		BadRequest(w, "User has no associated worker", nil)
	case errors.Is(err, leave.ErrHRRoleRequired):
		Forbidden(w, "HR role required")
	case errors.Is(err, leave.ErrCompanyNotAuthorized):
		Forbidden(w, "Company not authorized")
	case errors.Is(err, leave.ErrAlreadyResolved):
		Conflict(w, "Leave request already resolved")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrOnlyWorkers):
		Forbidden(w, "Only workers can request vacations")
	case errors.Is(err, vacation.ErrNoWorkerAssociated):
		BadRequest(w, "User has no associated worker", nil)
	case errors.Is(err, vacation.ErrHRRoleRequired):
		Forbidden(w, "HR role required")
	case errors.Is(err, vacation.ErrCompanyNotAuthorized):
		Forbidden(w, "Company not authorized")
	case errors.Is(err, vacation.ErrAlreadyResolved):
		Conflict(w, "Vacation request already resolved")

	// Audit domain errors
	case errors.Is(err, audit.ErrRoleNotAllowed):
		Forbidden(w, "Audit log restricted to admin_rrhh and fiscalizador")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
