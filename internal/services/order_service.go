package services

import (
	"errors"
	"fmt"
	"log"

	"attire/internal/models"
	"attire/internal/repositories"

	"github.com/google/uuid"
)

// FlatShippingRate is the flat shipping charge applied to every non-empty
// order at checkout.
const FlatShippingRate = 10.0

// ErrEmptyCart rejects a checkout attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// OrderEventPublisher publishes order lifecycle events to the message broker.
// A nil publisher disables event publishing.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders and checkout.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	carts       *CartService
	promotions  *PromotionService
	events      OrderEventPublisher
}

// NewOrderService creates a new OrderService. The events publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, carts *CartService, promotions *PromotionService, events OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		carts:       carts,
		promotions:  promotions,
		events:      events,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersForSession retrieves the order history of one shopping session.
func (s *OrderService) GetOrdersForSession(sessionID string) ([]models.Order, error) {
	return s.orderRepo.GetBySession(sessionID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Checkout turns the session's cart into a placed order: validates stock for
// every line, reserves it, prices the order (flat shipping plus an optional
// promo code), persists the order, publishes an order-created event and clears
// the cart. Reserved stock is released again if a later step fails.
func (s *OrderService) Checkout(sessionID string, address models.Address, promoCode string) (*models.Order, error) {
	cart := s.carts.Cart(sessionID)
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Re-resolve every line against the catalog so stock and existence are
	// checked at the moment of purchase, not at the moment of adding.
	products := make([]*models.Product, len(cart.Lines))
	items := make([]models.OrderItem, len(cart.Lines))
	var subtotal float64
	for i, line := range cart.Lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s no longer available: %w", line.ProductID, err)
		}
		if product.Stock < line.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)", product.Name, line.Quantity, product.Stock)
		}
		products[i] = product
		items[i] = models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.SelectedSize,
			Color:     line.SelectedColor,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		subtotal += line.Price * float64(line.Quantity)
	}

	// Reserve stock before consuming the promo code's use count, so a failed
	// reservation never burns a redemption. If any write fails partway, restore
	// the lines already decremented.
	releaseStock := func(upto int) {
		for i := 0; i < upto; i++ {
			products[i].Stock += items[i].Quantity
			if err := s.productRepo.Update(products[i]); err != nil {
				log.Printf("Failed to release reserved stock for product %s: %v", products[i].Name, err)
			}
		}
	}
	for i, product := range products {
		product.Stock -= items[i].Quantity
		if err := s.productRepo.Update(product); err != nil {
			releaseStock(i)
			return nil, fmt.Errorf("failed to reserve stock for product %s: %w", product.Name, err)
		}
	}

	var discount float64
	if promoCode != "" {
		amount, err := s.promotions.Redeem(promoCode, subtotal)
		if err != nil {
			releaseStock(len(products))
			return nil, err
		}
		discount = amount
	}

	shipping := FlatShippingRate

	order := &models.Order{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Discount:        discount,
		PromoCode:       promoCode,
		Total:           subtotal + shipping - discount,
		Status:          models.OrderStatusPending,
		ShippingAddress: address,
	}
	if err := s.orderRepo.Create(order); err != nil {
		releaseStock(len(products))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Event publishing is fire-and-forget; a broker outage must not lose the
	// placed order.
	if s.events != nil {
		event := map[string]interface{}{
			"order_id":   order.ID,
			"session_id": order.SessionID,
			"total":      order.Total,
			"items":      len(order.Items),
			"status":     order.Status,
		}
		if err := s.events.PublishOrderCreated(event); err != nil {
			log.Printf("Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	s.carts.ClearCart(sessionID)
	return order, nil
}

// UpdateOrderStatus moves an order to a new status after validating it.
func (s *OrderService) UpdateOrderStatus(id, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	return s.orderRepo.UpdateStatus(id, status)
}
