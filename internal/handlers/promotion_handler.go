package handlers

import (
	"fmt"
	"log"
	"strings"

	"attire/internal/models"
	"attire/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PromotionHandler handles admin HTTP requests for discount codes.
type PromotionHandler struct {
	service  *services.PromotionService
	validate *validator.Validate
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(service *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterAdminRoutes registers the promotion management routes.
func (h *PromotionHandler) RegisterAdminRoutes(router fiber.Router) {
	promoRoutes := router.Group("/promotions")
	promoRoutes.Get("/", h.HandleGetAllPromotions)
	promoRoutes.Post("/", h.HandleCreatePromotion)
	promoRoutes.Put("/:id", h.HandleUpdatePromotion)
	promoRoutes.Delete("/:id", h.HandleDeletePromotion)
	promoRoutes.Patch("/:id/activate", h.HandleActivate)
	promoRoutes.Patch("/:id/deactivate", h.HandleDeactivate)
}

// HandleGetAllPromotions lists all promotions.
func (h *PromotionHandler) HandleGetAllPromotions(c *fiber.Ctx) error {
	promotions, err := h.service.GetAllPromotions()
	if err != nil {
		log.Printf("Error getting all promotions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve promotions",
			"error":   err.Error(),
		})
	}
	return c.JSON(promotions)
}

// HandleCreatePromotion creates a new promotion.
func (h *PromotionHandler) HandleCreatePromotion(c *fiber.Ctx) error {
	var promotion models.Promotion
	if err := c.BodyParser(&promotion); err != nil {
		log.Printf("Error parsing create promotion request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(promotion); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreatePromotion(&promotion); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Promotion creation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating promotion: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create promotion",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(promotion)
}

// HandleUpdatePromotion updates an existing promotion.
func (h *PromotionHandler) HandleUpdatePromotion(c *fiber.Ctx) error {
	var promotion models.Promotion
	if err := c.BodyParser(&promotion); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	promotion.ID = c.Params("id")

	if err := h.validate.Struct(promotion); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpdatePromotion(&promotion); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Promotion with ID %s not found", promotion.ID),
			})
		}
		log.Printf("Error updating promotion %s: %v", promotion.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update promotion",
			"error":   err.Error(),
		})
	}
	return c.JSON(promotion)
}

// HandleDeletePromotion deletes a promotion.
func (h *PromotionHandler) HandleDeletePromotion(c *fiber.Ctx) error {
	promotionID := c.Params("id")
	if err := h.service.DeletePromotion(promotionID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Promotion with ID %s not found", promotionID),
			})
		}
		log.Printf("Error deleting promotion %s: %v", promotionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete promotion",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Promotion %s deleted successfully", promotionID),
	})
}

// HandleActivate marks the promotion active.
func (h *PromotionHandler) HandleActivate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

// HandleDeactivate marks the promotion inactive.
func (h *PromotionHandler) HandleDeactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *PromotionHandler) setActive(c *fiber.Ctx, active bool) error {
	promotionID := c.Params("id")
	promotion, err := h.service.SetActive(promotionID, active)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Promotion with ID %s not found", promotionID),
			})
		}
		log.Printf("Error toggling promotion %s: %v", promotionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update promotion",
			"error":   err.Error(),
		})
	}
	return c.JSON(promotion)
}
