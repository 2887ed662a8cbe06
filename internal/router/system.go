package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the website contract:
// health, metrics, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", h.Metrics.Serve)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
