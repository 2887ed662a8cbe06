package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers,
	// request metrics and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing is a no-op unless New Relic is configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// nrApp is nil when New Relic is not configured; tracing then degrades
// into pass-through middleware.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
