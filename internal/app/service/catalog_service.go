package service

import (
	"errors"

	"github.com/mamakabowls/pos/internal/app/model"
	"github.com/mamakabowls/pos/internal/app/repository"
	"github.com/mamakabowls/pos/pkg/logger"
)

var ErrCategoryNotFound = errors.New("category not found")

type CatalogService interface {
	Categories() []model.Category
	Items(category string) ([]model.MenuItem, error)
	AddOns() []model.AddOn
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) Categories() []model.Category {
	return s.catalogRepo.Categories()
}

func (s *catalogService) Items(category string) ([]model.MenuItem, error) {
	cat, err := s.catalogRepo.FindCategory(category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Category not found", map[string]interface{}{
				"category": category,
			})
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat.Items, nil
}

func (s *catalogService) AddOns() []model.AddOn {
	return s.catalogRepo.AddOns()
}
