package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/wagebook/wagebook-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	statusHandler StatusHandler,
	employeeHandler EmployeeHandler,
	transactionHandler TransactionHandler,
	attendanceHandler AttendanceHandler,
	settlementHandler SettlementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wagebook"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	// Unsupported methods get chi's 405 with the Allow header listing the
	// route's valid methods.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", statusHandler.Status)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Delete("/", employeeHandler.Deactivate)

				r.Post("/transactions", transactionHandler.Create)
				r.Get("/transactions", transactionHandler.List)
				r.Post("/attendance", attendanceHandler.Mark)
				r.Post("/settle", settlementHandler.Settle)
				r.Get("/payments", settlementHandler.ListPayments)
			})
		})
	})
	return r
}
