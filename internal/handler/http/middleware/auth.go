package middleware

import (
	"context"
	"net/http"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/auth"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type principalKey struct{}

// UserFromContext returns the authenticated user installed by Authenticated.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(principalKey{}).(*user.User)
	return u, ok
}

// AuthRequired rejects requests without a valid access token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Authenticated loads the token's subject from the store and installs it in
// the request context. Blocked users are rejected here, so a revoked account
// dies with its access token at the latest.
func Authenticated(users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if !u.IsActive() {
				response.HandleError(w, user.ErrUserBlocked)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, &u)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
