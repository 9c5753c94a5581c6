package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires the public surface, the admin-gated surface, and the
// read-only asset file server.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, assetRoot string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/health", handlers.health())
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/tags", handlers.projectHandler.listTags())
		r.Post("/inquiries", handlers.inquiryHandler.createInquiry())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Put("/profile", handlers.profileHandler.updateProfile())
			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
			r.Post("/projects/{projectID}/assets", handlers.projectHandler.attachAssets())
			r.Delete("/projects/{projectID}/assets", handlers.projectHandler.detachAsset())
			r.Get("/inquiries", handlers.inquiryHandler.listInquiries())
		})
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Uploaded files are served read-only at the same relative paths that are
	// persisted on the entities.
	fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(assetRoot)))
	r.Method(http.MethodGet, "/assets/*", fileServer)
}
