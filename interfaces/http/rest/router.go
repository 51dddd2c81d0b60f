// Package rest wires the HTTP surface: routing, middleware, and the
// JSON handlers over the command and query buses.
package rest

import (
	"context"
	"net/http"
	"time"

	"sysmap-backend/application/commands/bus"
	"sysmap-backend/application/ports"
	querybus "sysmap-backend/application/queries/bus"
	"sysmap-backend/infrastructure/config"
	"sysmap-backend/interfaces/http/rest/handlers"
	"sysmap-backend/interfaces/http/rest/middleware"
	"sysmap-backend/pkg/auth"
	pkgerrors "sysmap-backend/pkg/errors"
	"sysmap-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	store      ports.SystemReader
	limiter    *auth.IPRateLimiter
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	store ports.SystemReader,
	limiter *auth.IPRateLimiter,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		commandBus: commandBus,
		queryBus:   queryBus,
		store:      store,
		limiter:    limiter,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	errorHandler := pkgerrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(rt.metrics.Middleware)
	}
	router.Use(middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("api"), rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Operational endpoints
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		if rt.cfg.EnableAuth {
			validator := auth.NewJWTValidator(rt.cfg.JWTSecret)
			r.Use(middleware.Authenticate(validator, rt.limiter, rt.logger))
		}

		// System endpoints
		r.Route("/systems", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
			graphHandler := handlers.NewGraphHandler(rt.queryBus, errorHandler, rt.logger)

			r.Post("/", systemHandler.CreateSystem)
			r.Get("/", systemHandler.ListSystems)
			r.Get("/{systemID}", systemHandler.GetSystem)
			r.Put("/{systemID}", systemHandler.UpdateSystem)
			r.Delete("/{systemID}", systemHandler.DeleteSystem)

			r.Get("/{systemID}/subtree", systemHandler.GetSubtree)
			r.Get("/{systemID}/interfaces", systemHandler.GetInterfaces)
			r.Get("/{systemID}/available-systems", systemHandler.GetAvailableSystems)
			r.Get("/{systemID}/graph", graphHandler.GetGraph)
		})

		// Interface endpoints
		r.Route("/interfaces", func(r chi.Router) {
			interfaceHandler := handlers.NewInterfaceHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)

			r.Post("/", interfaceHandler.CreateInterface)
			r.Get("/{interfaceID}", interfaceHandler.GetInterface)
			r.Put("/{interfaceID}", interfaceHandler.UpdateInterface)
			r.Delete("/{interfaceID}", interfaceHandler.DeleteInterface)
		})

		// Revision endpoints
		r.Route("/revisions", func(r chi.Router) {
			revisionHandler := handlers.NewRevisionHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)

			r.Get("/{entityType}/{entityID}", revisionHandler.ListRevisions)
			r.Post("/{revisionID}/restore", revisionHandler.RestoreRevision)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck verifies the store answers before reporting ready
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if _, err := rt.store.ListSystemsByParent(ctx, nil); err != nil {
		rt.logger.Warn("Readiness check failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
