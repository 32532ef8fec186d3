package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/middleware"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"github.com/sbexpress/hris-backend-go/internal/pkg/metrics"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Contract     ContractHandler
	Employee     EmployeeHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
}

func NewRouter(app config.AppConfig, JWTService jwt.Service, recorder *metrics.Recorder, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       app.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sbe-hris"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/working-days", h.Attendance.GetWorkingDays)
				r.Post("/check-in", h.Attendance.CheckIn)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/check-nik", h.Employee.CheckNIK)
				r.Get("/positions", h.Employee.GetPositionStats)

				// Admin and HRD only
				r.With(middleware.RequireEmployeeManager).Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.With(middleware.RequireEmployeeManager).Delete("/", h.Employee.DeleteEmployee)
					r.Get("/history", h.Employee.GetHistory)
					r.Get("/contract", h.Contract.GetEmployeeContract)
					r.Get("/attendance", h.Attendance.ListMonthly)
					r.Get("/attendance/summary", h.Attendance.GetSummary)
				})
			})

			r.Get("/contracts/overview", h.Contract.GetOverview)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/realtime", h.Dashboard.GetRealtime)
				r.Get("/attendance-trend", h.Dashboard.GetAttendanceTrend)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/birthdays", h.Notification.GetBirthdays)
				r.Get("/contracts", h.Notification.GetContracts)
			})
		})
	})
	return r
}
