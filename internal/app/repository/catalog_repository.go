package repository

import (
	"errors"

	"github.com/mamakabowls/pos/internal/app/model"
)

// ErrNotFound is returned when a catalog lookup misses. Services translate it
// into their own sentinels.
var ErrNotFound = errors.New("catalog entry not found")

type CatalogRepository interface {
	Categories() []model.Category
	FindCategory(name string) (*model.Category, error)
	FindItem(name string) (*model.MenuItem, error)
	AddOns() []model.AddOn
	FindAddOn(name string) (*model.AddOn, error)
}

type catalogRepository struct {
	catalog    *model.Catalog
	categories map[string]*model.Category
	items      map[string]*model.MenuItem
	addOns     map[string]*model.AddOn
}

// NewCatalogRepository indexes a validated catalog for lookup. The catalog is
// static; the indexes are built once and never mutated.
func NewCatalogRepository(catalog *model.Catalog) CatalogRepository {
	r := &catalogRepository{
		catalog:    catalog,
		categories: make(map[string]*model.Category),
		items:      make(map[string]*model.MenuItem),
		addOns:     make(map[string]*model.AddOn),
	}
	for i := range catalog.Categories {
		category := &catalog.Categories[i]
		r.categories[category.Name] = category
		for j := range category.Items {
			r.items[category.Items[j].Name] = &category.Items[j]
		}
	}
	for i := range catalog.AddOns {
		r.addOns[catalog.AddOns[i].Name] = &catalog.AddOns[i]
	}
	return r
}

func (r *catalogRepository) Categories() []model.Category {
	return r.catalog.Categories
}

func (r *catalogRepository) FindCategory(name string) (*model.Category, error) {
	if category, found := r.categories[name]; found {
		return category, nil
	}
	return nil, ErrNotFound
}

func (r *catalogRepository) FindItem(name string) (*model.MenuItem, error) {
	if item, found := r.items[name]; found {
		return item, nil
	}
	return nil, ErrNotFound
}

func (r *catalogRepository) AddOns() []model.AddOn {
	return r.catalog.AddOns
}

func (r *catalogRepository) FindAddOn(name string) (*model.AddOn, error) {
	if addOn, found := r.addOns[name]; found {
		return addOn, nil
	}
	return nil, ErrNotFound
}
