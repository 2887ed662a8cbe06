package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/service"
)

// DiagnosticsHandler serves GET /test, which the website team uses to see
// whether the backend reaches its database. It always answers 200.
type DiagnosticsHandler struct {
	Handler
	diagnostics *service.DiagnosticsService
}

func NewDiagnosticsHandler(s *server.Server, diagnostics *service.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		Handler:     NewHandler(s),
		diagnostics: diagnostics,
	}
}

func (h *DiagnosticsHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, h.diagnostics.Report(c.Request().Context()))
}
