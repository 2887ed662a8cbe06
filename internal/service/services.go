package service

import (
	"github.com/deppfellow/nettoyage-lausanne/internal/repository"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

type Services struct {
	Catalog     *CatalogService
	Submission  *SubmissionService
	Diagnostics *DiagnosticsService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Catalog:     NewCatalogService(),
		Submission:  NewSubmissionService(s, repos.Documents),
		Diagnostics: NewDiagnosticsService(s, repos.Documents),
	}
}
