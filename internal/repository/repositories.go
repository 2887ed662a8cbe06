package repository

import (
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Documents *DocumentRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Documents: NewDocumentRepository(s),
	}
}
