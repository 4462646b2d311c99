package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRecover)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withCORS(h.cfg.AllowedOrigins()))
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withSessionIdentity)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.Route("/api/strains", func(r chi.Router) {
		r.Get("/", h.listStrains)
		r.Post("/", h.createStrain)
		r.Get("/{id}", h.getStrain)
		r.Put("/{id}", h.updateStrain)
		r.Delete("/{id}", h.deleteStrain)
	})

	return router
}
