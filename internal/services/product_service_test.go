package services_test

import (
	"fmt"
	"testing"

	"attire/internal/catalog"
	"attire/internal/models"
	"attire/internal/repositories"
	"attire/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ProductRepoMock is a testify mock of repositories.ProductRepository, used to
// drive the failure paths the in-memory mock cannot produce.
type ProductRepoMock struct {
	mock.Mock
}

func (m *ProductRepoMock) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepoMock) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepoMock) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *ProductRepoMock) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func seedProducts(t *testing.T, repo repositories.ProductRepository) {
	t.Helper()
	for _, p := range []models.Product{
		{ID: "p1", Name: "Essential Cotton Tee", Category: models.CategoryMen, Price: 45, Sizes: []string{"S", "M", "L"}, Colors: []string{"White", "Black"}, Stock: 50},
		{ID: "p2", Name: "Silk Blend Dress", Category: models.CategoryWomen, Price: 189, Sizes: []string{"XS", "S", "M"}, Colors: []string{"Navy"}, IsNew: true, Stock: 20},
		{ID: "p3", Name: "Wool Overcoat", Category: models.CategoryMen, Price: 320, Sizes: []string{"M", "L", "XL"}, Colors: []string{"Charcoal"}, IsFeatured: true, Stock: 8},
		{ID: "p4", Name: "Linen Shirt", Category: models.CategoryUnisex, Price: 78, Sizes: []string{"S", "M"}, Colors: []string{"White"}, IsNew: true, Stock: 35},
	} {
		assert.NoError(t, repo.Create(&p))
	}
}

func TestProductService_QueryProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	page, err := svc.QueryProducts(catalog.Query{Category: "men"})
	assert.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, "p1", page.Items[0].ID)
	assert.Equal(t, "p3", page.Items[1].ID)

	// The zero-value query returns the full catalog, first page, default size.
	page, err = svc.QueryProducts(catalog.Query{})
	assert.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, catalog.DefaultPageSize, page.PageSize)
}

func TestProductService_QueryProductsPagination(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	page, err := svc.QueryProducts(catalog.Query{Page: 2, PageSize: 3})
	assert.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "p4", page.Items[0].ID)

	// A page past the end is empty but still reports the totals.
	page, err = svc.QueryProducts(catalog.Query{Page: 9, PageSize: 3})
	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.Total)
}

func TestProductService_SearchProducts(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	page, err := svc.SearchProducts("shirt", 1, 12)
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "p4", page.Items[0].ID)

	// A blank term yields an empty page, not the full catalog.
	page, err = svc.SearchProducts("", 1, 12)
	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestProductService_UpdateProductKeepsPosition(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	update := &models.Product{ID: "p2", Name: "Silk Blend Dress", Category: models.CategoryWomen, Price: 159, Sizes: []string{"XS", "S", "M"}, Colors: []string{"Navy"}, Stock: 20}
	assert.NoError(t, svc.UpdateProduct(update))

	// p2 still sorts into its original catalog slot.
	all, err := svc.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, 159.0, all[1].Price)
}

func TestProductService_AdjustStock(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	product, err := svc.AdjustStock("p3", -3)
	assert.NoError(t, err)
	assert.Equal(t, 5, product.Stock)

	// Stock clamps at zero instead of going negative.
	product, err = svc.AdjustStock("p3", -100)
	assert.NoError(t, err)
	assert.Zero(t, product.Stock)

	_, err = svc.AdjustStock("missing", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProductService_QueryProductsLoadFailure(t *testing.T) {
	mockRepo := new(ProductRepoMock)
	svc := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	_, err := svc.QueryProducts(catalog.Query{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
	mockRepo.AssertExpectations(t)
}

func TestProductService_AdjustStockUpdateFailure(t *testing.T) {
	mockRepo := new(ProductRepoMock)
	svc := services.NewProductService(mockRepo)

	product := &models.Product{ID: "p1", Name: "Essential Cotton Tee", Stock: 5, Position: 1}
	mockRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockRepo.On("Update", product).Return(fmt.Errorf("database error")).Once()

	_, err := svc.AdjustStock("p1", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo)
	svc := services.NewProductService(repo)

	assert.NoError(t, svc.DeleteProduct("p1"))
	_, err := svc.GetProductByID("p1")
	assert.Error(t, err)

	err = svc.DeleteProduct("p1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
