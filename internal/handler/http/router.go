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
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/middleware"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	availabilityHandler AvailabilityHandler,
	jobHandler JobHandler,
	applicationHandler ApplicationHandler,
	shiftHandler ShiftHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timepick-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/availability", func(r chi.Router) {
				r.Put("/", availabilityHandler.ReplaceAvailability)
				r.Get("/", availabilityHandler.GetAvailability)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", jobHandler.ListJobs)
				r.Get("/matches", jobHandler.MatchJobs)
				r.Get("/{id}", jobHandler.GetJob)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", applicationHandler.Apply)
				r.Get("/", applicationHandler.ListMyApplications)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/", shiftHandler.CreateShift)
				r.Get("/", shiftHandler.ListShiftsByDate)
				r.Get("/month", shiftHandler.ListShiftsByMonth)
				r.Put("/{id}", shiftHandler.EditShift)
				r.Delete("/{id}", shiftHandler.DeleteShift)
				r.Delete("/groups/{groupID}", shiftHandler.DeleteShiftGroup)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/monthly", payrollHandler.GetMonthlySummary)
			})
		})
	})
	return r
}
