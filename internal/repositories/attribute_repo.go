package repositories

import (
	"attire/internal/models"
)

// AttributeRepository defines the interface for the managed product attributes
// (sizes, colors, categories) edited from the admin attribute manager.
type AttributeRepository interface {
	GetSizes() ([]models.Size, error)
	CreateSize(size *models.Size) error
	UpdateSize(size *models.Size) error
	DeleteSize(id string) error

	GetColors() ([]models.Color, error)
	CreateColor(color *models.Color) error
	UpdateColor(color *models.Color) error
	DeleteColor(id string) error

	GetCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id string) error
}
