package handler

import (
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Site        *SiteHandler
	Submission  *SubmissionHandler
	Diagnostics *DiagnosticsHandler
	Health      *HealthHandler
	Metrics     *MetricsHandler
	OpenAPI     *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Site:        NewSiteHandler(s, services.Catalog),
		Submission:  NewSubmissionHandler(s, services.Submission),
		Diagnostics: NewDiagnosticsHandler(s, services.Diagnostics),
		Health:      NewHealthHandler(s),
		Metrics:     NewMetricsHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
	}
}
