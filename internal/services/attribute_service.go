package services

import (
	"fmt"
	"strings"

	"attire/internal/models"
	"attire/internal/repositories"
)

// AttributeService handles business logic for the managed product attributes
// edited from the admin attribute manager.
type AttributeService struct {
	repo     repositories.AttributeRepository
	products repositories.ProductRepository
}

// NewAttributeService creates a new AttributeService. The product repository is
// used to guard category deletion.
func NewAttributeService(repo repositories.AttributeRepository, products repositories.ProductRepository) *AttributeService {
	return &AttributeService{
		repo:     repo,
		products: products,
	}
}

// GetSizes retrieves all managed sizes.
func (s *AttributeService) GetSizes() ([]models.Size, error) {
	return s.repo.GetSizes()
}

// CreateSize creates a new size. Names are unique.
func (s *AttributeService) CreateSize(size *models.Size) error {
	size.Name = strings.TrimSpace(size.Name)
	existing, err := s.repo.GetSizes()
	if err != nil {
		return fmt.Errorf("failed to check existing sizes: %w", err)
	}
	for i := range existing {
		if existing[i].Name == size.Name {
			return fmt.Errorf("size with name %s already exists", size.Name)
		}
	}
	return s.repo.CreateSize(size)
}

// UpdateSize updates an existing size.
func (s *AttributeService) UpdateSize(size *models.Size) error {
	size.Name = strings.TrimSpace(size.Name)
	return s.repo.UpdateSize(size)
}

// DeleteSize deletes a size by its ID.
func (s *AttributeService) DeleteSize(id string) error {
	return s.repo.DeleteSize(id)
}

// GetColors retrieves all managed colors.
func (s *AttributeService) GetColors() ([]models.Color, error) {
	return s.repo.GetColors()
}

// CreateColor creates a new color. Names are unique.
func (s *AttributeService) CreateColor(color *models.Color) error {
	color.Name = strings.TrimSpace(color.Name)
	existing, err := s.repo.GetColors()
	if err != nil {
		return fmt.Errorf("failed to check existing colors: %w", err)
	}
	for i := range existing {
		if existing[i].Name == color.Name {
			return fmt.Errorf("color with name %s already exists", color.Name)
		}
	}
	return s.repo.CreateColor(color)
}

// UpdateColor updates an existing color.
func (s *AttributeService) UpdateColor(color *models.Color) error {
	color.Name = strings.TrimSpace(color.Name)
	return s.repo.UpdateColor(color)
}

// DeleteColor deletes a color by its ID.
func (s *AttributeService) DeleteColor(id string) error {
	return s.repo.DeleteColor(id)
}

// GetCategories retrieves all managed categories.
func (s *AttributeService) GetCategories() ([]models.Category, error) {
	return s.repo.GetCategories()
}

// CreateCategory creates a new category, deriving the slug from the name when
// one is not given.
func (s *AttributeService) CreateCategory(category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	existing, err := s.repo.GetCategories()
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	for i := range existing {
		if existing[i].Name == category.Name || existing[i].Slug == category.Slug {
			return fmt.Errorf("category with slug %s already exists", category.Slug)
		}
	}
	return s.repo.CreateCategory(category)
}

// UpdateCategory updates an existing category.
func (s *AttributeService) UpdateCategory(category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return s.repo.UpdateCategory(category)
}

// DeleteCategory deletes a category, rejecting the deletion while any product
// still references it.
func (s *AttributeService) DeleteCategory(id string) error {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check products for category %s: %w", category.Name, err)
	}
	for i := range products {
		if products[i].Category == category.Slug || products[i].Category == category.Name {
			return fmt.Errorf("category %s is still referenced by product %s", category.Name, products[i].Name)
		}
	}
	return s.repo.DeleteCategory(id)
}

// Slugify lowercases the name and replaces runs of non-alphanumeric characters
// with single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
