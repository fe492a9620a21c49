package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtaoOfficial/Interview/internal/handler"
	"github.com/dtaoOfficial/Interview/internal/middleware"
)

// Deps carries everything the route table needs. The router owns the
// middleware order: the gate (Authenticate) always runs before the
// policy (Authorize), and both run after rate limiting so unauthenticated
// floods never reach the token codec.
type Deps struct {
	Auth         *handler.AuthHandler
	Roles        *handler.RoleHandler
	Questions    *handler.QuestionHandler
	Applications *handler.ApplicationHandler
	Files        *handler.FileHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware

	CORSOrigins    []string
	RequestTimeout time.Duration
}

func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(deps.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(deps.RateLimit.Handler)
	r.Use(deps.AuthMiddleware.Authenticate)
	r.Use(middleware.Authorize)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Uploads and file streaming are exempt from the request timeout;
	// everything else under /api gets it.
	timeout := middleware.Timeout(deps.RequestTimeout)

	r.Route("/api", func(api chi.Router) {
		authRoutes := func(ar chi.Router) {
			ar.Use(timeout)
			ar.Post("/login", deps.Auth.Login)
			ar.Post("/register", deps.Auth.Register)
		}
		api.Route("/auth", authRoutes)
		// The admin portal's older builds call the same endpoints under
		// /api/admin/auth.
		api.Route("/admin/auth", authRoutes)

		api.Route("/public", func(pub chi.Router) {
			pub.With(timeout).Get("/roles", deps.Roles.ListPublic)
			pub.Post("/apply", deps.Applications.Submit)
			pub.With(timeout).Get("/share/{id}", deps.Files.Detail)
			pub.Get("/share/{id}/{kind}", deps.Files.Serve)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/roles", func(rr chi.Router) {
				rr.Use(timeout)
				rr.Get("/", deps.Roles.List)
				rr.Post("/", deps.Roles.Create)
				rr.Get("/{id}", deps.Roles.Get)
				rr.Put("/{id}", deps.Roles.Update)
				rr.Delete("/{id}", deps.Roles.Delete)
			})

			admin.Route("/questions", func(qr chi.Router) {
				qr.Use(timeout)
				qr.Post("/", deps.Questions.Create)
				qr.Get("/", deps.Questions.ListByRole)
				qr.Get("/{roleId}", deps.Questions.ListByRole)
				qr.Put("/{id}", deps.Questions.Update)
				qr.Delete("/{id}", deps.Questions.Delete)
				qr.Delete("/role/{roleId}", deps.Questions.DeleteByRole)
			})

			admin.Route("/applications", func(ar chi.Router) {
				ar.Use(timeout)
				ar.Get("/", deps.Applications.List)
				ar.Get("/{id}", deps.Applications.Get)
				ar.Put("/{id}/status", deps.Applications.UpdateStatus)
			})

			admin.Get("/files/{id}/{kind}", deps.Files.Serve)
		})
	})

	return r
}
