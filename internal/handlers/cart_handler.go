package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"attire/internal/middleware"
	"attire/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart and wishlist.
type CartHandler struct {
	carts    *services.CartService
	products *services.ProductService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService, products *services.ProductService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart and wishlist routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddToCart)
	cartRoutes.Patch("/items", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items", h.HandleRemoveFromCart)
	cartRoutes.Delete("/", h.HandleClearCart)

	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveFromWishlist)
}

// AddToCartRequest is the request body for adding a cart line.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartLineKeyRequest identifies a cart line by its composite key, optionally
// carrying a replacement quantity.
type CartLineKeyRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleGetCart returns the session's cart with its derived aggregates.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.carts.Cart(middleware.SessionID(c)))
}

// HandleAddToCart adds a product in a chosen size and color to the cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add to cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
			})
		}
		log.Printf("Error loading product %s for cart: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}

	sessionID := middleware.SessionID(c)
	message, err := h.carts.AddToCart(sessionID, product, req.Size, req.Color, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrSizeRequired) || errors.Is(err, services.ErrColorRequired) ||
			errors.Is(err, services.ErrSizeNotOffered) || errors.Is(err, services.ErrColorNotOffered) ||
			errors.Is(err, services.ErrInvalidQuantity) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Could not add to cart",
				"error":   err.Error(),
			})
		}
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"cart":    h.carts.Cart(sessionID),
	})
}

// HandleUpdateQuantity replaces a cart line's quantity; zero removes the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req CartLineKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	sessionID := middleware.SessionID(c)
	message := h.carts.UpdateQuantity(sessionID, req.ProductID, req.Size, req.Color, req.Quantity)
	return c.JSON(fiber.Map{
		"message": message,
		"cart":    h.carts.Cart(sessionID),
	})
}

// HandleRemoveFromCart removes a cart line by its composite key.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	var req CartLineKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	sessionID := middleware.SessionID(c)
	message := h.carts.RemoveFromCart(sessionID, req.ProductID, req.Size, req.Color)
	return c.JSON(fiber.Map{
		"message": message,
		"cart":    h.carts.Cart(sessionID),
	})
}

// HandleClearCart empties the session's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	message := h.carts.ClearCart(sessionID)
	return c.JSON(fiber.Map{
		"message": message,
		"cart":    h.carts.Cart(sessionID),
	})
}

// HandleGetWishlist returns the session's saved products.
func (h *CartHandler) HandleGetWishlist(c *fiber.Ctx) error {
	return c.JSON(h.carts.Wishlist(middleware.SessionID(c)))
}

// HandleAddToWishlist saves a product to the wishlist; re-adding is a no-op.
func (h *CartHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	productID := c.Params("productId")
	product, err := h.products.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		log.Printf("Error loading product %s for wishlist: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to wishlist",
			"error":   err.Error(),
		})
	}

	sessionID := middleware.SessionID(c)
	message := h.carts.AddToWishlist(sessionID, *product)
	return c.JSON(fiber.Map{
		"message":  message,
		"wishlist": h.carts.Wishlist(sessionID),
	})
}

// HandleRemoveFromWishlist removes a product from the wishlist.
func (h *CartHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	message := h.carts.RemoveFromWishlist(sessionID, c.Params("productId"))
	return c.JSON(fiber.Map{
		"message":  message,
		"wishlist": h.carts.Wishlist(sessionID),
	})
}
