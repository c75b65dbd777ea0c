package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/katalvlaran/diagraph/core"
	"github.com/katalvlaran/diagraph/dataset"
	"github.com/katalvlaran/diagraph/internal/config"
)

// Router assembles the middleware chain and API routes.
type Router struct {
	handler *Handler
	logger  *zap.Logger
	metrics *Metrics
	origins []string
}

// NewRouter builds a Router over a diagnosis graph and its ruleset.
func NewRouter(graph *core.Graph, rules *dataset.Ruleset, logger *zap.Logger, cfg config.Config) *Router {
	metrics := NewMetrics("diagraph")
	return &Router{
		handler: NewHandler(graph, rules, logger, metrics, cfg.Diagnose.TopN),
		logger:  logger,
		metrics: metrics,
		origins: cfg.HTTP.AllowedOrigins,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(rt.logger))
	router.Use(rt.metrics.Instrument)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", rt.healthCheck)
	router.Get("/readyz", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/symptoms", rt.handler.ListSymptoms)
		r.Get("/diseases", rt.handler.ListDiseases)
		r.Get("/diseases/{name}", rt.handler.GetDisease)
		r.Post("/diagnose", rt.handler.Diagnose)
	})

	return router
}

// healthCheck reports liveness.
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	rt.handler.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports whether the diagnosis graph is loaded.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	if rt.handler.graph == nil || rt.handler.graph.VertexCount() == 0 {
		rt.handler.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	rt.handler.respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
