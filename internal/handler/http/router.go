package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens/worklens-backend-go/internal/domain/user"
	"github.com/worklens/worklens-backend-go/internal/handler/http/middleware"
	"github.com/worklens/worklens-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	reportHandler ReportHandler,
	idleHandler IdleHandler,
	referenceHandler ReferenceHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklens"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(user.CapabilityViewAllReports))
					r.Get("/tasks", reportHandler.GetTaskStats)
					r.Get("/dwm", reportHandler.GetDWMReport)
					r.Get("/dwm/drilldown", reportHandler.GetDWMDrilldown)
					r.Get("/time-log", reportHandler.GetTimeLog)
					r.Post("/dwm/invalidate", reportHandler.InvalidateDWMReport)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAnyCapability(
						user.CapabilityViewAllReports,
						user.CapabilityViewConsolidated,
					))
					r.Get("/time-log/consolidated", reportHandler.GetConsolidatedTimeLog)
				})
			})

			r.Route("/idle", func(r chi.Router) {
				r.Get("/my", idleHandler.GetMyItems)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(user.CapabilitySubmitIdleReason))
					r.Post("/{itemID}/reason", idleHandler.SubmitReason)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireCapability(user.CapabilityManageIdleTickets))
					r.Post("/{itemID}/ticket", idleHandler.AttachTicket)
				})
			})

			r.Route("/reference", func(r chi.Router) {
				r.Get("/departments", referenceHandler.ListDepartments)
				r.Get("/categories", referenceHandler.ListCategories)
			})
		})
	})
	return r
}
