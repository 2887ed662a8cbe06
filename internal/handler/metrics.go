package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

// MetricsHandler exposes the Prometheus registry of the server.
type MetricsHandler struct {
	Handler
}

func NewMetricsHandler(s *server.Server) *MetricsHandler {
	return &MetricsHandler{
		Handler: NewHandler(s),
	}
}

func (h *MetricsHandler) Serve(c echo.Context) error {
	h.server.Metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
