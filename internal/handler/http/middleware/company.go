package middleware

import (
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/validator"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	"github.com/go-chi/chi/v5"
)

// RequireCompanyAccess gates a route on company visibility under roleFilter.
// The company id is taken from the empresa_id URL param when present,
// otherwise from the empresa_id query parameter. Without a company id the
// request passes when the caller can see at least one company; a malformed
// id is denied outright.
func RequireCompanyAccess(accessService access.Service, roleFilter []user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			companyID := chi.URLParam(r, "empresa_id")
			if companyID == "" {
				companyID = r.URL.Query().Get("empresa_id")
			}

			if companyID == "" {
				allowed, err := accessService.AuthorizedCompanyIDs(r.Context(), u, roleFilter)
				if err != nil {
					response.HandleError(w, err)
					return
				}
				if len(allowed) == 0 {
					response.HandleError(w, user.ErrCompanyNotAllowed)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !validator.IsValidUUID(companyID) {
				response.HandleError(w, user.ErrCompanyNotAllowed)
				return
			}

			ok, err := accessService.HasAccess(r.Context(), u, companyID, roleFilter)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !ok {
				response.HandleError(w, user.ErrCompanyNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
