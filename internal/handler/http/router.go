package http

import (
	"log/slog"
	"os"

	"github.com/edutrack/edutrack-backend-go/internal/handler/http/middleware"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	rosterHandler RosterHandler,
	userHandler UserHandler,
	applicationHandler ApplicationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "edutrack"),
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Public signup applications
		r.Post("/applications/apply", applicationHandler.Apply)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/me", authHandler.Me)
			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Route("/attendance", func(r chi.Router) {
				// Student dashboard
				r.Group(func(r chi.Router) {
					r.Use(middleware.StudentOnly)
					r.Get("/my/stats", attendanceHandler.GetMyStats)
					r.Get("/my/calendar", attendanceHandler.GetMyCalendar)
				})

				// Teacher history view and marking
				r.Group(func(r chi.Router) {
					r.Use(middleware.TeacherOrAdmin)
					r.Get("/classes", attendanceHandler.ListClasses)
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.Mark)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Use(middleware.TeacherOrAdmin)
				r.Get("/", rosterHandler.List)
				r.Post("/", rosterHandler.Create)
				r.Put("/{id}", rosterHandler.Update)
				r.Delete("/{id}", rosterHandler.Delete)
				r.Route("/classes", func(r chi.Router) {
					r.Get("/{class}", rosterHandler.ListByClass)
					r.Delete("/{class}", rosterHandler.DeleteClass)
				})
			})

			// Admin console
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})

				r.Route("/applications", func(r chi.Router) {
					r.Get("/", applicationHandler.List)
					r.Post("/{id}/approve", applicationHandler.Approve)
					r.Post("/{id}/reject", applicationHandler.Reject)
				})
			})
		})
	})

	return r
}
