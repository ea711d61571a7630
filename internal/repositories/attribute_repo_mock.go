package repositories

import (
	"fmt"
	"sync"

	"attire/internal/models"

	"github.com/google/uuid"
)

// MockAttributeRepository is an in-memory implementation of AttributeRepository.
// All three attribute kinds are slice-backed to keep creation order.
type MockAttributeRepository struct {
	sizes      []models.Size
	colors     []models.Color
	categories []models.Category
	mu         sync.RWMutex
}

// NewMockAttributeRepository creates a new instance of MockAttributeRepository.
func NewMockAttributeRepository() *MockAttributeRepository {
	return &MockAttributeRepository{}
}

// GetSizes returns all sizes.
func (r *MockAttributeRepository) GetSizes() ([]models.Size, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Size, len(r.sizes))
	copy(out, r.sizes)
	return out, nil
}

// CreateSize adds a new size, enforcing name uniqueness.
func (r *MockAttributeRepository) CreateSize(size *models.Size) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sizes {
		if r.sizes[i].Name == size.Name {
			return fmt.Errorf("size with name %s already exists", size.Name)
		}
	}
	if size.ID == "" {
		size.ID = uuid.New().String()
	}
	r.sizes = append(r.sizes, *size)
	return nil
}

// UpdateSize modifies an existing size.
func (r *MockAttributeRepository) UpdateSize(size *models.Size) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sizes {
		if r.sizes[i].ID == size.ID {
			r.sizes[i] = *size
			return nil
		}
	}
	return fmt.Errorf("size with ID %s not found for update", size.ID)
}

// DeleteSize removes a size by its ID.
func (r *MockAttributeRepository) DeleteSize(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sizes {
		if r.sizes[i].ID == id {
			r.sizes = append(r.sizes[:i], r.sizes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("size with ID %s not found for deletion", id)
}

// GetColors returns all colors.
func (r *MockAttributeRepository) GetColors() ([]models.Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Color, len(r.colors))
	copy(out, r.colors)
	return out, nil
}

// CreateColor adds a new color, enforcing name uniqueness.
func (r *MockAttributeRepository) CreateColor(color *models.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.colors {
		if r.colors[i].Name == color.Name {
			return fmt.Errorf("color with name %s already exists", color.Name)
		}
	}
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	r.colors = append(r.colors, *color)
	return nil
}

// UpdateColor modifies an existing color.
func (r *MockAttributeRepository) UpdateColor(color *models.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.colors {
		if r.colors[i].ID == color.ID {
			r.colors[i] = *color
			return nil
		}
	}
	return fmt.Errorf("color with ID %s not found for update", color.ID)
}

// DeleteColor removes a color by its ID.
func (r *MockAttributeRepository) DeleteColor(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.colors {
		if r.colors[i].ID == id {
			r.colors = append(r.colors[:i], r.colors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("color with ID %s not found for deletion", id)
}

// GetCategories returns all categories.
func (r *MockAttributeRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetCategoryByID returns a category by its ID.
func (r *MockAttributeRepository) GetCategoryByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category with ID %s not found", id)
}

// CreateCategory adds a new category, enforcing name and slug uniqueness.
func (r *MockAttributeRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].Name == category.Name || r.categories[i].Slug == category.Slug {
			return fmt.Errorf("category with name %s or slug %s already exists", category.Name, category.Slug)
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories = append(r.categories, *category)
	return nil
}

// UpdateCategory modifies an existing category.
func (r *MockAttributeRepository) UpdateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return fmt.Errorf("category with ID %s not found for update", category.ID)
}

// DeleteCategory removes a category by its ID.
func (r *MockAttributeRepository) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("category with ID %s not found for deletion", id)
}
