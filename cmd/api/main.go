package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	appHTTP "github.com/sbexpress/hris-backend-go/internal/handler/http"
	"github.com/sbexpress/hris-backend-go/internal/pkg/cron"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"github.com/sbexpress/hris-backend-go/internal/pkg/metrics"
	"github.com/sbexpress/hris-backend-go/internal/repository/postgresql"
	activityLogService "github.com/sbexpress/hris-backend-go/internal/service/activitylog"
	attendanceService "github.com/sbexpress/hris-backend-go/internal/service/attendance"
	serviceAuth "github.com/sbexpress/hris-backend-go/internal/service/auth"
	contractService "github.com/sbexpress/hris-backend-go/internal/service/contract"
	dashboardService "github.com/sbexpress/hris-backend-go/internal/service/dashboard"
	employeeService "github.com/sbexpress/hris-backend-go/internal/service/employee"
	notificationService "github.com/sbexpress/hris-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	dsn := cfg.DatabaseURL()
	if cfg.App.AutoMigrate {
		result, err := database.Migrate(dsn, "up")
		if err != nil {
			slog.Error("Error running migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Migrations applied", "result", result)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)
	activityHistoryRepo := postgresql.NewActivityHistoryRepository(db)

	recorder := metrics.NewRecorder()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	activitySvc := activityLogService.NewActivityLogService(activityLogRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, activitySvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, activityHistoryRepo, activitySvc, cfg.Policy)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		activityLogRepo,
		cfg.Policy,
		recorder,
	)
	contractSvc := contractService.NewContractService(contractRepo, employeeRepo, cfg.Policy)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, cfg.Policy, recorder)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, contractSvc, cfg.Policy)

	router := appHTTP.NewRouter(cfg.App, JWTService, recorder, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Contract:     appHTTP.NewContractHandler(contractSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc, activitySvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc, activitySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, cfg.Policy.BirthdayLookaheadDays),
	})

	scheduler := cron.NewScheduler()
	if cfg.App.ContractSweepInterval > 0 {
		cron.NewContractJobs(contractSvc, recorder).RegisterJobs(scheduler, cfg.App.ContractSweepInterval)
	}
	scheduler.Start(context.Background())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
	slog.Info("Server stopped")
}
