package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxBodyBytes caps a request body. RequestSize runs inside withGZip, so the
// limit applies to the decompressed stream.
const maxBodyBytes = 100 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS(), withGZip, middleware.RequestSize(maxBodyBytes))

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/api/jobs", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createJob)
		r.Get("/", h.listJobs)
		r.Get("/{id}", h.getJob)
		r.Put("/{id}", h.updateJob)
		r.Delete("/{id}", h.deleteJob)
	})

	router.NotFound(CheckHTTPMethod)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
