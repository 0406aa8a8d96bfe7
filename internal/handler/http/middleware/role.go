package middleware

import (
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
)

// RequireRoles allows only users whose role is in the given set.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			if !user.RoleIn(u.Role, roles) {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
