package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Neicx/Kivo-Asistencia/internal/config"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/handler/http/middleware"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/jwt"
	"github.com/Neicx/Kivo-Asistencia/internal/service/access"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	App               config.AppConfig
	JWTService        jwt.Service
	Users             user.Repository
	AccessService     access.Service
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	VacationHandler   VacationHandler
	CompanyHandler    CompanyHandler
	WorkerHandler     WorkerHandler
	UserHandler       UserHandler
	AuditHandler      AuditHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kivo-asistencia"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/token", func(r chi.Router) {
			r.Post("/", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.Authenticated(deps.Users))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", deps.AttendanceHandler.Status)
				r.Post("/", deps.AttendanceHandler.Mark)
				r.Get("/list", deps.AttendanceHandler.List)
			})

			r.Get("/workers/{id}/profile", deps.WorkerHandler.Profile)

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", deps.LeaveHandler.Create)
				r.Get("/", deps.LeaveHandler.List)
				r.Post("/{id}/resolve", deps.LeaveHandler.Resolve)
			})

			r.Route("/vacation", func(r chi.Router) {
				r.Post("/", deps.VacationHandler.Create)
				r.Get("/", deps.VacationHandler.List)
				r.Post("/{id}/resolve", deps.VacationHandler.Resolve)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RolesWithCompanies...))
					r.Get("/", deps.CompanyHandler.List)
				})
				r.Get("/assigned", deps.CompanyHandler.Assigned)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCompanyAccess(deps.AccessService, user.RolesWithCompanies))
					r.Get("/{empresa_id}/shifts", deps.CompanyHandler.Shifts)
				})
			})

			// HR admin only
			r.Route("/hr/users", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleHRAdmin))
				r.Post("/", deps.UserHandler.Create)
				r.Put("/{id}", deps.UserHandler.Update)
				r.Patch("/{id}", deps.UserHandler.Update)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RolesWithCompanies...))
				r.Get("/users", deps.UserHandler.List)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleHRAdmin, user.RoleAuditor))
				r.Get("/audit", deps.AuditHandler.List)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
