package service

import "github.com/deppfellow/nettoyage-lausanne/internal/model"

// CatalogService serves the fixed list of offerings.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) List() []model.Service {
	return model.Services()
}
