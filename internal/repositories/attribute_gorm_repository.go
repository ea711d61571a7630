package repositories

import (
	"fmt"

	"attire/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAttributeRepository is a GORM implementation of AttributeRepository.
type GORMAttributeRepository struct {
	db *gorm.DB
}

// NewGORMAttributeRepository creates a new instance of GORMAttributeRepository.
func NewGORMAttributeRepository(db *gorm.DB) *GORMAttributeRepository {
	return &GORMAttributeRepository{
		db: db,
	}
}

// GetSizes retrieves all sizes in creation order.
func (r *GORMAttributeRepository) GetSizes() ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.Order("created_at asc").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to get sizes: %w", err)
	}
	return sizes, nil
}

// CreateSize creates a new size.
func (r *GORMAttributeRepository) CreateSize(size *models.Size) error {
	if size.ID == "" {
		size.ID = uuid.New().String()
	}
	if err := r.db.Create(size).Error; err != nil {
		return fmt.Errorf("failed to create size: %w", err)
	}
	return nil
}

// UpdateSize updates an existing size.
func (r *GORMAttributeRepository) UpdateSize(size *models.Size) error {
	res := r.db.Save(size)
	if res.Error != nil {
		return fmt.Errorf("failed to update size: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("size with ID %s not found for update", size.ID)
	}
	return nil
}

// DeleteSize deletes a size by its ID.
func (r *GORMAttributeRepository) DeleteSize(id string) error {
	res := r.db.Delete(&models.Size{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete size: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("size with ID %s not found for deletion", id)
	}
	return nil
}

// GetColors retrieves all colors in creation order.
func (r *GORMAttributeRepository) GetColors() ([]models.Color, error) {
	var colors []models.Color
	if err := r.db.Order("created_at asc").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to get colors: %w", err)
	}
	return colors, nil
}

// CreateColor creates a new color.
func (r *GORMAttributeRepository) CreateColor(color *models.Color) error {
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	if err := r.db.Create(color).Error; err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

// UpdateColor updates an existing color.
func (r *GORMAttributeRepository) UpdateColor(color *models.Color) error {
	res := r.db.Save(color)
	if res.Error != nil {
		return fmt.Errorf("failed to update color: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("color with ID %s not found for update", color.ID)
	}
	return nil
}

// DeleteColor deletes a color by its ID.
func (r *GORMAttributeRepository) DeleteColor(id string) error {
	res := r.db.Delete(&models.Color{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete color: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("color with ID %s not found for deletion", id)
	}
	return nil
}

// GetCategories retrieves all categories in creation order.
func (r *GORMAttributeRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a single category by its ID.
func (r *GORMAttributeRepository) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// CreateCategory creates a new category.
func (r *GORMAttributeRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// UpdateCategory updates an existing category.
func (r *GORMAttributeRepository) UpdateCategory(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s not found for update", category.ID)
	}
	return nil
}

// DeleteCategory deletes a category by its ID.
func (r *GORMAttributeRepository) DeleteCategory(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s not found for deletion", id)
	}
	return nil
}
