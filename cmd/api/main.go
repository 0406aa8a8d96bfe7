package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/Neicx/Kivo-Asistencia/internal/config"
	appHTTP "github.com/Neicx/Kivo-Asistencia/internal/handler/http"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/jwt"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/storage"
	"github.com/Neicx/Kivo-Asistencia/internal/repository/postgresql"
	accessService "github.com/Neicx/Kivo-Asistencia/internal/service/access"
	attendanceService "github.com/Neicx/Kivo-Asistencia/internal/service/attendance"
	auditService "github.com/Neicx/Kivo-Asistencia/internal/service/audit"
	authService "github.com/Neicx/Kivo-Asistencia/internal/service/auth"
	companyService "github.com/Neicx/Kivo-Asistencia/internal/service/company"
	"github.com/Neicx/Kivo-Asistencia/internal/service/file"
	leaveService "github.com/Neicx/Kivo-Asistencia/internal/service/leave"
	userService "github.com/Neicx/Kivo-Asistencia/internal/service/user"
	vacationService "github.com/Neicx/Kivo-Asistencia/internal/service/vacation"
	workerService "github.com/Neicx/Kivo-Asistencia/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	scopeSvc := accessService.NewScopeService(userRepo)
	auditSvc := auditService.NewAuditService(auditRepo, scopeSvc, slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, workerRepo, scopeSvc, cfg.Location())
	leaveSvc := leaveService.NewLeaveService(leaveRepo, scopeSvc, auditSvc, fileSvc)
	vacationSvc := vacationService.NewVacationService(vacationRepo, scopeSvc, auditSvc)
	companySvc := companyService.NewCompanyService(companyRepo, scopeSvc)
	workerSvc := workerService.NewWorkerService(workerRepo, scopeSvc)
	userSvc := userService.NewUserService(userRepo, scopeSvc, auditSvc)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		App:               cfg.App,
		JWTService:        jwtService,
		Users:             userRepo,
		AccessService:     scopeSvc,
		AuthHandler:       appHTTP.NewAuthHandler(jwtService, authSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		VacationHandler:   appHTTP.NewVacationHandler(vacationSvc),
		CompanyHandler:    appHTTP.NewCompanyHandler(companySvc),
		WorkerHandler:     appHTTP.NewWorkerHandler(workerSvc),
		UserHandler:       appHTTP.NewUserHandler(userSvc),
		AuditHandler:      appHTTP.NewAuditHandler(auditSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
