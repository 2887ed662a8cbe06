package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/model"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/service"
)

// SiteHandler serves the read-only endpoints of the website.
type SiteHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewSiteHandler(s *server.Server, catalog *service.CatalogService) *SiteHandler {
	return &SiteHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

func (h *SiteHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: model.Greeting})
}

// ListServices returns the five offerings in display order.
func (h *SiteHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.List())
}
