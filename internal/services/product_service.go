package services

import (
	"fmt"

	"attire/internal/catalog"
	"attire/internal/models"
	"attire/internal/repositories"
)

// ProductPage is one page of a catalog query result.
type ProductPage struct {
	Items      []models.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products in catalog order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// QueryProducts runs the catalog query pipeline over the full catalog and
// returns the requested page.
func (s *ProductService) QueryProducts(q catalog.Query) (*ProductPage, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = catalog.DefaultPageSize
	}

	result := catalog.Apply(products, q)
	return &ProductPage{
		Items:      catalog.Paginate(result, q.Page, q.PageSize),
		Total:      len(result),
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: catalog.TotalPages(len(result), q.PageSize),
	}, nil
}

// SearchProducts runs the pipeline in free-text mode. A blank term yields an
// empty page rather than the full catalog, matching the search view.
func (s *ProductService) SearchProducts(term string, page, pageSize int) (*ProductPage, error) {
	if term == "" {
		if pageSize < 1 {
			pageSize = catalog.DefaultPageSize
		}
		return &ProductPage{Items: []models.Product{}, Page: 1, PageSize: pageSize}, nil
	}
	return s.QueryProducts(catalog.Query{Term: term, Page: page, PageSize: pageSize})
}

// CreateProduct creates a new product in the shared catalog.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. The catalog position is kept when
// the update does not carry one.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Position == 0 {
		existing, err := s.repo.GetByID(product.ID)
		if err != nil {
			return err
		}
		product.Position = existing.Position
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// AdjustStock changes a product's stock by delta, clamping at zero.
func (s *ProductService) AdjustStock(id string, delta int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Stock += delta
	if product.Stock < 0 {
		product.Stock = 0
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
