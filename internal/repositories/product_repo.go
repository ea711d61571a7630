package repositories

import (
	"attire/internal/models"
)

// ProductRepository defines the interface for catalog data access. GetAll must
// return products in catalog (position) order, since the storefront's
// "featured" sort is that order.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Count() (int, error)
}
