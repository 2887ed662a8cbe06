package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/handler"
	"github.com/deppfellow/nettoyage-lausanne/internal/model"
)

// registerSiteRoutes registers the endpoints the website calls.
func registerSiteRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Site.Root)
	r.GET("/test", h.Diagnostics.Test)

	api := r.Group("/api")
	api.GET("/services", h.Site.ListServices)

	api.POST("/lead", handler.Handle(
		h.Submission.Handler,
		h.Submission.CreateLead,
		http.StatusOK,
		model.NewLead,
	))

	api.POST("/contact", handler.Handle(
		h.Submission.Handler,
		h.Submission.CreateContactMessage,
		http.StatusOK,
		model.NewContactMessage,
	))
}
