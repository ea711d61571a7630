package main

import (
	"testing"

	"attire/internal/catalog"
	"attire/internal/models"
	"attire/internal/repositories"
	"attire/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSeedCatalog(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedCatalog(repo)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 12)

	// Every seeded product is complete enough to be added to a cart.
	for _, p := range products {
		assert.NotEmpty(t, p.ID, "product %s has no ID", p.Name)
		assert.NotEmpty(t, p.Sizes, "product %s has no sizes", p.Name)
		assert.NotEmpty(t, p.Colors, "product %s has no colors", p.Name)
		assert.Greater(t, p.Price, 0.0, "product %s has no price", p.Name)
		assert.Contains(t, []string{models.CategoryMen, models.CategoryWomen, models.CategoryUnisex}, p.Category)
	}

	// Seeding is idempotent: a non-empty catalog is left alone.
	seedCatalog(repo)
	products, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 12)

	// The catalog carries new arrivals so the "new" view is not empty.
	newArrivals := catalog.Apply(products, catalog.Query{Category: catalog.CategoryNew})
	assert.NotEmpty(t, newArrivals)
}

func TestSeedAttributes(t *testing.T) {
	repo := repositories.NewMockAttributeRepository()
	seedAttributes(repo)

	sizes, err := repo.GetSizes()
	assert.NoError(t, err)
	assert.Len(t, sizes, 6)

	colors, err := repo.GetColors()
	assert.NoError(t, err)
	assert.Len(t, colors, 7)
	for _, c := range colors {
		assert.NotNil(t, c.HexCode, "color %s has no hex code", c.Name)
	}

	categories, err := repo.GetCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	for _, c := range categories {
		assert.Equal(t, services.Slugify(c.Name), c.Slug)
	}

	seedAttributes(repo)
	sizes, err = repo.GetSizes()
	assert.NoError(t, err)
	assert.Len(t, sizes, 6)
}

func TestSeedPromotions(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	seedPromotions(repo)

	promotions, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, promotions, 3)

	// The welcome code is immediately redeemable.
	svc := services.NewPromotionService(repo)
	amount, err := svc.Redeem("WELCOME10", 100)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, amount)

	seedPromotions(repo)
	promotions, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, promotions, 3)
}
