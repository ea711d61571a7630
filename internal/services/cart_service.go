package services

import (
	"errors"
	"log"
	"sync"

	"attire/internal/models"
	"attire/internal/repositories"
)

// Advisory messages returned alongside cart and wishlist mutations. They feed
// the storefront's toast notifications and are never part of the operation's
// success/failure contract.
const (
	MsgAddedToCart         = "Added to cart"
	MsgUpdatedQuantity     = "Updated quantity in cart"
	MsgRemovedFromCart     = "Removed from cart"
	MsgCartCleared         = "Cart cleared"
	MsgAddedToWishlist     = "Added to wishlist"
	MsgAlreadyInWishlist   = "Already in wishlist"
	MsgRemovedFromWishlist = "Removed from wishlist"
)

// Validation errors for cart mutations. The product detail page disables the
// add-to-cart action until a size and color are chosen; these errors enforce
// the same contract at the service boundary.
var (
	ErrSizeRequired    = errors.New("a size must be selected")
	ErrColorRequired   = errors.New("a color must be selected")
	ErrSizeNotOffered  = errors.New("size not offered for this product")
	ErrColorNotOffered = errors.New("color not offered for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// CartState is a read-only view of a session's cart returned to consumers,
// with the aggregates recomputed at read time.
type CartState struct {
	Lines     []models.CartLine `json:"lines"`
	CartTotal float64           `json:"cart_total"`
	CartCount int               `json:"cart_count"`
}

// CartService is the single source of truth for shopping carts and wishlists.
// State is held in memory per shopping session; an optional snapshot store
// persists each session's cart across restarts. All mutations are synchronous
// and the caller observes a consistent state immediately after they return.
type CartService struct {
	mu        sync.Mutex
	sessions  map[string]*models.Cart
	snapshots repositories.CartSnapshotStore // optional, may be nil
}

// NewCartService creates a new CartService. Pass a nil snapshot store to keep
// carts purely in memory.
func NewCartService(snapshots repositories.CartSnapshotStore) *CartService {
	return &CartService{
		sessions:  make(map[string]*models.Cart),
		snapshots: snapshots,
	}
}

// cart returns the session's cart, restoring it from a snapshot on first
// touch. Callers must hold s.mu.
func (s *CartService) cart(sessionID string) *models.Cart {
	if c, ok := s.sessions[sessionID]; ok {
		return c
	}
	c := &models.Cart{}
	if s.snapshots != nil {
		restored, err := s.snapshots.Load(sessionID)
		if err != nil {
			log.Printf("Failed to restore cart snapshot for session %s: %v", sessionID, err)
		} else if restored != nil {
			c = restored
		}
	}
	s.sessions[sessionID] = c
	return c
}

// persist writes the session's snapshot after a mutation. Durability is
// best-effort; failures are logged and never surfaced to the shopper.
// Callers must hold s.mu.
func (s *CartService) persist(sessionID string, c *models.Cart) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(sessionID, c); err != nil {
		log.Printf("Failed to save cart snapshot for session %s: %v", sessionID, err)
	}
}

// AddToCart adds quantity units of the product in the chosen size and color to
// the session's cart. A line with the same (product, size, color) composite key
// is merged by incrementing its quantity. Returns the advisory message for the
// notification surface.
func (s *CartService) AddToCart(sessionID string, product *models.Product, size, color string, quantity int) (string, error) {
	if size == "" {
		return "", ErrSizeRequired
	}
	if color == "" {
		return "", ErrColorRequired
	}
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}
	if !product.HasSize(size) {
		return "", ErrSizeNotOffered
	}
	if !product.HasColor(color) {
		return "", ErrColorNotOffered
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := c.FindLine(product.ID, size, color); i >= 0 {
		c.Lines[i].Quantity += quantity
		s.persist(sessionID, c)
		return MsgUpdatedQuantity, nil
	}
	c.Lines = append(c.Lines, models.CartLine{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		Image:         product.MainImage(),
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      quantity,
	})
	s.persist(sessionID, c)
	return MsgAddedToCart, nil
}

// RemoveFromCart removes the line matching the composite key. Removing a line
// that does not exist is a silent no-op so repeated clicks stay idempotent.
func (s *CartService) RemoveFromCart(sessionID, productID, size, color string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := c.FindLine(productID, size, color); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		s.persist(sessionID, c)
	}
	return MsgRemovedFromCart
}

// UpdateQuantity replaces the quantity of the line matching the composite key.
// A quantity of zero or below removes the line, identical to RemoveFromCart.
// Updating a missing line is a silent no-op.
func (s *CartService) UpdateQuantity(sessionID, productID, size, color string, quantity int) string {
	if quantity <= 0 {
		return s.RemoveFromCart(sessionID, productID, size, color)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if i := c.FindLine(productID, size, color); i >= 0 {
		c.Lines[i].Quantity = quantity
		s.persist(sessionID, c)
	}
	return MsgUpdatedQuantity
}

// ClearCart empties the session's cart unconditionally. The wishlist is kept.
func (s *CartService) ClearCart(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.Lines = nil
	s.persist(sessionID, c)
	return MsgCartCleared
}

// Cart returns a copy of the session's cart lines with the derived aggregates.
func (s *CartService) Cart(sessionID string) CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	lines := make([]models.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return CartState{
		Lines:     lines,
		CartTotal: c.Total(),
		CartCount: c.Count(),
	}
}

// CartTotal is the session cart's summed price, recomputed on every call.
func (s *CartService) CartTotal(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Total()
}

// CartCount is the number of units in the session's cart.
func (s *CartService) CartCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Count()
}

// AddToWishlist saves the product to the session's wishlist. Adding a product
// that is already saved is an idempotent no-op with its own advisory message.
func (s *CartService) AddToWishlist(sessionID string, product models.Product) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if c.InWishlist(product.ID) {
		return MsgAlreadyInWishlist
	}
	c.Wishlist = append(c.Wishlist, product)
	s.persist(sessionID, c)
	return MsgAddedToWishlist
}

// RemoveFromWishlist removes the product from the session's wishlist; removing
// a product that is not saved is a silent no-op.
func (s *CartService) RemoveFromWishlist(sessionID, productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.Wishlist {
		if c.Wishlist[i].ID == productID {
			c.Wishlist = append(c.Wishlist[:i], c.Wishlist[i+1:]...)
			s.persist(sessionID, c)
			break
		}
	}
	return MsgRemovedFromWishlist
}

// IsInWishlist reports whether the product is saved in the session's wishlist.
func (s *CartService) IsInWishlist(sessionID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).InWishlist(productID)
}

// Wishlist returns a copy of the session's saved products.
func (s *CartService) Wishlist(sessionID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	out := make([]models.Product, len(c.Wishlist))
	copy(out, c.Wishlist)
	return out
}
