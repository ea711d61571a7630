package repositories

import (
	"fmt"
	"sync"

	"attire/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It is slice-backed so the catalog order is the insertion order.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// GetAll returns all products in catalog order.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, len(r.products))
	copy(productList, r.products)
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// Create adds a new product at the end of the catalog order.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range r.products {
		if r.products[i].ID == product.ID {
			return fmt.Errorf("product with ID %s already exists", product.ID)
		}
	}
	if product.Position == 0 {
		product.Position = len(r.products) + 1
	}
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product in place, keeping its catalog position.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			if product.Position == 0 {
				product.Position = r.products[i].Position
			}
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for update", product.ID)
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for deletion", id)
}

// Count returns the number of products.
func (r *MockProductRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}
