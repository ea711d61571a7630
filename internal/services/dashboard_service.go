package services

import (
	"fmt"

	"attire/internal/models"
	"attire/internal/repositories"
)

// lowStockThreshold is the stock level below which the dashboard flags a
// product for restocking.
const lowStockThreshold = 10

// DashboardStats are the aggregates shown on the admin dashboard. All values
// are computed from the repositories at request time.
type DashboardStats struct {
	ProductCount     int     `json:"product_count"`
	LowStockCount    int     `json:"low_stock_count"`
	OutOfStockCount  int     `json:"out_of_stock_count"`
	OrderCount       int     `json:"order_count"`
	PendingOrders    int     `json:"pending_orders"`
	Revenue          float64 `json:"revenue"`
	ActivePromotions int     `json:"active_promotions"`
}

// DashboardService computes admin dashboard aggregates.
type DashboardService struct {
	products   repositories.ProductRepository
	orders     repositories.OrderRepository
	promotions repositories.PromotionRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(products repositories.ProductRepository, orders repositories.OrderRepository, promotions repositories.PromotionRepository) *DashboardService {
	return &DashboardService{
		products:   products,
		orders:     orders,
		promotions: promotions,
	}
}

// Stats gathers the dashboard aggregates. Revenue excludes cancelled orders.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	products, err := s.products.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products for dashboard: %w", err)
	}
	stats.ProductCount = len(products)
	for i := range products {
		switch {
		case products[i].Stock == 0:
			stats.OutOfStockCount++
		case products[i].Stock < lowStockThreshold:
			stats.LowStockCount++
		}
	}

	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for dashboard: %w", err)
	}
	stats.OrderCount = len(orders)
	for i := range orders {
		if orders[i].Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if orders[i].Status != models.OrderStatusCancelled {
			stats.Revenue += orders[i].Total
		}
	}

	promotions, err := s.promotions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load promotions for dashboard: %w", err)
	}
	for i := range promotions {
		if promotions[i].Active {
			stats.ActivePromotions++
		}
	}

	return stats, nil
}
