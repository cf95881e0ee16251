package repository

import (
	"testing"

	"github.com/mamakabowls/pos/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogRepository(t *testing.T) CatalogRepository {
	cat := catalog.Default()
	require.NoError(t, cat.Validate())
	return NewCatalogRepository(cat)
}

func TestCatalogRepository_Categories(t *testing.T) {
	repo := setupCatalogRepository(t)

	categories := repo.Categories()
	require.Len(t, categories, 4)
	assert.Equal(t, "Bowls", categories[0].Name)
	assert.Equal(t, "Tacos", categories[3].Name)
}

func TestCatalogRepository_FindCategory(t *testing.T) {
	repo := setupCatalogRepository(t)

	category, err := repo.FindCategory("Smoothies")
	require.NoError(t, err)
	assert.True(t, category.AllowAddOns)
	assert.Len(t, category.Items, 4)

	_, err = repo.FindCategory("Desserts")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepository_FindItem(t *testing.T) {
	repo := setupCatalogRepository(t)

	item, err := repo.FindItem("Mamaka Bowl")
	require.NoError(t, err)
	assert.True(t, item.Sized())

	item, err = repo.FindItem("Latte")
	require.NoError(t, err)
	assert.False(t, item.Sized())

	_, err = repo.FindItem("Pizza")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepository_FindAddOn(t *testing.T) {
	repo := setupCatalogRepository(t)

	addOn, err := repo.FindAddOn("Bananas")
	require.NoError(t, err)
	assert.Equal(t, "Bananas", addOn.Name)

	_, err = repo.FindAddOn("Sprinkles")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, repo.AddOns(), 6)
}
