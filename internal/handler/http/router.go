package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/meridianhr/console-backend-go/internal/handler/http/middleware"
	"github.com/meridianhr/console-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	payrollRunHandler PayrollRunHandler,
	statementHandler StatementHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Post("/", payrollRunHandler.CreateRun)

				r.Route("/{runID}", func(r chi.Router) {
					r.Get("/", payrollRunHandler.GetRun)
					r.Delete("/", payrollRunHandler.CancelRun)
					r.Put("/selection", payrollRunHandler.UpdateSelection)
					r.Patch("/employees/{employeeID}", payrollRunHandler.UpdateEmployee)
					r.Get("/review", payrollRunHandler.Review)
					r.Post("/generate", payrollRunHandler.Generate)
					r.Get("/outcomes", payrollRunHandler.Outcomes)
				})
			})

			r.Route("/salary-slips", func(r chi.Router) {
				r.Get("/{slipID}", statementHandler.GetSlipDetail)
			})
		})
	})
	return r
}
