package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/kmsteel/hr-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, attendanceHandler AttendanceHandler, payrollHandler PayrollHandler, holidayHandler HolidayHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/records", attendanceHandler.UpsertRecord)
			r.Post("/records/bulk", attendanceHandler.BulkUpsertRecords)
			r.Delete("/records/{id}", attendanceHandler.DeleteRecord)

			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/days/{date}", attendanceHandler.DayStatus)
				r.Route("/months/{year}/{month}", func(r chi.Router) {
					r.Get("/", attendanceHandler.MonthSheet)
					r.Post("/refresh", attendanceHandler.RefreshMonth)
				})
			})
		})

		r.Get("/departments/{department}/months/{year}/{month}", attendanceHandler.TeamMonthSheet)

		r.Get("/payroll/{employeeID}/months/{year}/{month}", payrollHandler.MonthlySummary)

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/{year}", holidayHandler.ListByYear)
			r.Get("/check/{date}", holidayHandler.CheckDate)
		})
	})
	return r
}
