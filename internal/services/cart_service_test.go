package services_test

import (
	"testing"

	"attire/internal/models"
	"attire/internal/services"

	"github.com/stretchr/testify/assert"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:     "p1",
		Name:   "Essential Cotton Tee",
		Price:  45,
		Images: []string{"/images/tee.jpg"},
		Sizes:  []string{"S", "M", "L"},
		Colors: []string{"White", "Black"},
		Stock:  100,
	}
}

func TestCartService_AddToCartValidation(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	// Size and color are mandatory before anything reaches the cart.
	_, err := svc.AddToCart("s1", product, "", "Black", 1)
	assert.ErrorIs(t, err, services.ErrSizeRequired)

	_, err = svc.AddToCart("s1", product, "M", "", 1)
	assert.ErrorIs(t, err, services.ErrColorRequired)

	// Selections must come from the product's declared sets.
	_, err = svc.AddToCart("s1", product, "XXL", "Black", 1)
	assert.ErrorIs(t, err, services.ErrSizeNotOffered)

	_, err = svc.AddToCart("s1", product, "M", "Chartreuse", 1)
	assert.ErrorIs(t, err, services.ErrColorNotOffered)

	_, err = svc.AddToCart("s1", product, "M", "Black", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	// Nothing was added by any rejected call.
	assert.Empty(t, svc.Cart("s1").Lines)
}

func TestCartService_AddToCartMergesByCompositeKey(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	msg, err := svc.AddToCart("s1", product, "M", "Black", 1)
	assert.NoError(t, err)
	assert.Equal(t, services.MsgAddedToCart, msg)

	msg, err = svc.AddToCart("s1", product, "M", "Black", 2)
	assert.NoError(t, err)
	assert.Equal(t, services.MsgUpdatedQuantity, msg)

	// Same product in a different size is a distinct line.
	_, err = svc.AddToCart("s1", product, "L", "Black", 1)
	assert.NoError(t, err)

	state := svc.Cart("s1")
	assert.Len(t, state.Lines, 2)
	assert.Equal(t, 3, state.Lines[0].Quantity)
	assert.Equal(t, "M", state.Lines[0].SelectedSize)
	assert.Equal(t, 1, state.Lines[1].Quantity)
	assert.Equal(t, 4, state.CartCount)
	assert.Equal(t, 45.0*4, state.CartTotal)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	_, err := svc.AddToCart("s1", product, "M", "Black", 1)
	assert.NoError(t, err)

	svc.RemoveFromCart("s1", product.ID, "M", "Black")
	state := svc.Cart("s1")
	assert.Empty(t, state.Lines)
	assert.Zero(t, state.CartTotal)
	assert.Zero(t, state.CartCount)

	// Removing a line that does not exist is a silent no-op.
	msg := svc.RemoveFromCart("s1", product.ID, "M", "Black")
	assert.Equal(t, services.MsgRemovedFromCart, msg)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	_, err := svc.AddToCart("s1", product, "M", "Black", 2)
	assert.NoError(t, err)

	// Replace, not increment.
	svc.UpdateQuantity("s1", product.ID, "M", "Black", 5)
	state := svc.Cart("s1")
	assert.Equal(t, 5, state.Lines[0].Quantity)
	assert.Equal(t, 225.0, state.CartTotal)

	// Quantity zero removes the line, identical to RemoveFromCart.
	svc.UpdateQuantity("s1", product.ID, "M", "Black", 0)
	assert.Empty(t, svc.Cart("s1").Lines)

	// Updating a missing line stays a no-op.
	svc.UpdateQuantity("s1", product.ID, "M", "Black", 3)
	assert.Empty(t, svc.Cart("s1").Lines)
}

func TestCartService_ClearCart(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	_, err := svc.AddToCart("s1", product, "M", "Black", 2)
	assert.NoError(t, err)
	_, err = svc.AddToCart("s1", product, "S", "White", 1)
	assert.NoError(t, err)
	svc.AddToWishlist("s1", *product)

	msg := svc.ClearCart("s1")
	assert.Equal(t, services.MsgCartCleared, msg)
	assert.Empty(t, svc.Cart("s1").Lines)
	// The wishlist survives a cart clear.
	assert.Len(t, svc.Wishlist("s1"), 1)
}

func TestCartService_WishlistIdempotentAdd(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	msg := svc.AddToWishlist("s1", *product)
	assert.Equal(t, services.MsgAddedToWishlist, msg)
	assert.True(t, svc.IsInWishlist("s1", product.ID))

	// Adding twice yields the same membership state as adding once.
	msg = svc.AddToWishlist("s1", *product)
	assert.Equal(t, services.MsgAlreadyInWishlist, msg)
	assert.Len(t, svc.Wishlist("s1"), 1)
	assert.True(t, svc.IsInWishlist("s1", product.ID))
}

func TestCartService_RemoveFromWishlist(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	svc.AddToWishlist("s1", *product)
	svc.RemoveFromWishlist("s1", product.ID)
	assert.False(t, svc.IsInWishlist("s1", product.ID))
	assert.Empty(t, svc.Wishlist("s1"))

	// Removing an absent product is a silent no-op.
	msg := svc.RemoveFromWishlist("s1", product.ID)
	assert.Equal(t, services.MsgRemovedFromWishlist, msg)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()

	_, err := svc.AddToCart("s1", product, "M", "Black", 1)
	assert.NoError(t, err)

	assert.Equal(t, 1, svc.CartCount("s1"))
	assert.Zero(t, svc.CartCount("s2"))
	assert.False(t, svc.IsInWishlist("s2", product.ID))
}

func TestCartService_AggregatesRecomputedAfterEveryMutation(t *testing.T) {
	svc := services.NewCartService(nil)
	product := testProduct()
	other := testProduct()
	other.ID = "p2"
	other.Price = 98

	_, err := svc.AddToCart("s1", product, "M", "Black", 2)
	assert.NoError(t, err)
	assert.Equal(t, 90.0, svc.CartTotal("s1"))
	assert.Equal(t, 2, svc.CartCount("s1"))

	_, err = svc.AddToCart("s1", other, "S", "White", 1)
	assert.NoError(t, err)
	assert.Equal(t, 188.0, svc.CartTotal("s1"))
	assert.Equal(t, 3, svc.CartCount("s1"))

	svc.UpdateQuantity("s1", other.ID, "S", "White", 3)
	assert.Equal(t, 384.0, svc.CartTotal("s1"))
	assert.Equal(t, 5, svc.CartCount("s1"))

	svc.RemoveFromCart("s1", product.ID, "M", "Black")
	assert.Equal(t, 294.0, svc.CartTotal("s1"))
	assert.Equal(t, 3, svc.CartCount("s1"))
}

// memorySnapshotStore is an in-memory CartSnapshotStore used to verify the
// persistence hook without Redis.
type memorySnapshotStore struct {
	saved map[string]models.Cart
}

func (s *memorySnapshotStore) Save(sessionID string, cart *models.Cart) error {
	if s.saved == nil {
		s.saved = make(map[string]models.Cart)
	}
	s.saved[sessionID] = *cart
	return nil
}

func (s *memorySnapshotStore) Load(sessionID string) (*models.Cart, error) {
	cart, ok := s.saved[sessionID]
	if !ok {
		return nil, nil
	}
	return &cart, nil
}

func (s *memorySnapshotStore) Delete(sessionID string) error {
	delete(s.saved, sessionID)
	return nil
}

func TestCartService_SnapshotRoundTrip(t *testing.T) {
	store := &memorySnapshotStore{}
	product := testProduct()

	svc := services.NewCartService(store)
	_, err := svc.AddToCart("s1", product, "M", "Black", 2)
	assert.NoError(t, err)
	svc.AddToWishlist("s1", *product)

	// A fresh service backed by the same store restores the session's cart
	// on first touch.
	restored := services.NewCartService(store)
	state := restored.Cart("s1")
	assert.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, 90.0, state.CartTotal)
	assert.True(t, restored.IsInWishlist("s1", product.ID))
}
