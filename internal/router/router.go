// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/handler"
	"github.com/deppfellow/nettoyage-lausanne/internal/middleware"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

// NewRouter builds the Echo instance with the full middleware chain and routes.
//
// Middleware order matters:
//   - CORS first, so preflight requests are answered before anything else
//   - RequestID before tracing and the context logger, which both read it
//   - the New Relic transaction before EnhanceContext adds trace ids to the logger
//   - RequestLogger outside Recover, so a panic is logged as a 500
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.Metrics(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerSiteRoutes(router, h)

	return router
}
