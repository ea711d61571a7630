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

// AttributeHandler handles admin HTTP requests for the managed product
// attributes (sizes, colors, categories).
type AttributeHandler struct {
	service  *services.AttributeService
	validate *validator.Validate
}

// NewAttributeHandler creates a new AttributeHandler.
func NewAttributeHandler(service *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterAdminRoutes registers the attribute management routes.
func (h *AttributeHandler) RegisterAdminRoutes(router fiber.Router) {
	sizeRoutes := router.Group("/sizes")
	sizeRoutes.Get("/", h.HandleGetSizes)
	sizeRoutes.Post("/", h.HandleCreateSize)
	sizeRoutes.Put("/:id", h.HandleUpdateSize)
	sizeRoutes.Delete("/:id", h.HandleDeleteSize)

	colorRoutes := router.Group("/colors")
	colorRoutes.Get("/", h.HandleGetColors)
	colorRoutes.Post("/", h.HandleCreateColor)
	colorRoutes.Put("/:id", h.HandleUpdateColor)
	colorRoutes.Delete("/:id", h.HandleDeleteColor)

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// attributeError maps the shared repository error shapes to HTTP statuses.
func attributeError(c *fiber.Ctx, action string, err error) error {
	switch {
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case strings.Contains(err.Error(), "already exists"),
		strings.Contains(err.Error(), "still referenced"):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("%s failed", action),
			"error":   err.Error(),
		})
	}
	log.Printf("%s failed: %v", action, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("%s failed", action),
		"error":   err.Error(),
	})
}

// HandleGetSizes lists all managed sizes.
func (h *AttributeHandler) HandleGetSizes(c *fiber.Ctx) error {
	sizes, err := h.service.GetSizes()
	if err != nil {
		return attributeError(c, "Listing sizes", err)
	}
	return c.JSON(sizes)
}

// HandleCreateSize creates a new size.
func (h *AttributeHandler) HandleCreateSize(c *fiber.Ctx) error {
	var size models.Size
	if err := c.BodyParser(&size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.CreateSize(&size); err != nil {
		return attributeError(c, "Creating size", err)
	}
	return c.Status(fiber.StatusCreated).JSON(size)
}

// HandleUpdateSize updates an existing size.
func (h *AttributeHandler) HandleUpdateSize(c *fiber.Ctx) error {
	var size models.Size
	if err := c.BodyParser(&size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	size.ID = c.Params("id")
	if err := h.validate.Struct(size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.UpdateSize(&size); err != nil {
		return attributeError(c, "Updating size", err)
	}
	return c.JSON(size)
}

// HandleDeleteSize deletes a size.
func (h *AttributeHandler) HandleDeleteSize(c *fiber.Ctx) error {
	if err := h.service.DeleteSize(c.Params("id")); err != nil {
		return attributeError(c, "Deleting size", err)
	}
	return c.JSON(fiber.Map{"message": "Size deleted successfully"})
}

// HandleGetColors lists all managed colors.
func (h *AttributeHandler) HandleGetColors(c *fiber.Ctx) error {
	colors, err := h.service.GetColors()
	if err != nil {
		return attributeError(c, "Listing colors", err)
	}
	return c.JSON(colors)
}

// HandleCreateColor creates a new color.
func (h *AttributeHandler) HandleCreateColor(c *fiber.Ctx) error {
	var color models.Color
	if err := c.BodyParser(&color); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(color); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.CreateColor(&color); err != nil {
		return attributeError(c, "Creating color", err)
	}
	return c.Status(fiber.StatusCreated).JSON(color)
}

// HandleUpdateColor updates an existing color.
func (h *AttributeHandler) HandleUpdateColor(c *fiber.Ctx) error {
	var color models.Color
	if err := c.BodyParser(&color); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	color.ID = c.Params("id")
	if err := h.validate.Struct(color); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.UpdateColor(&color); err != nil {
		return attributeError(c, "Updating color", err)
	}
	return c.JSON(color)
}

// HandleDeleteColor deletes a color.
func (h *AttributeHandler) HandleDeleteColor(c *fiber.Ctx) error {
	if err := h.service.DeleteColor(c.Params("id")); err != nil {
		return attributeError(c, "Deleting color", err)
	}
	return c.JSON(fiber.Map{"message": "Color deleted successfully"})
}

// HandleGetCategories lists all managed categories.
func (h *AttributeHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return attributeError(c, "Listing categories", err)
	}
	return c.JSON(categories)
}

// HandleCreateCategory creates a new category.
func (h *AttributeHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if category.Slug == "" {
		category.Slug = services.Slugify(category.Name)
	}
	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return attributeError(c, "Creating category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory updates an existing category.
func (h *AttributeHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = c.Params("id")
	if category.Slug == "" {
		category.Slug = services.Slugify(category.Name)
	}
	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	if err := h.service.UpdateCategory(&category); err != nil {
		return attributeError(c, "Updating category", err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category unless products still reference it.
func (h *AttributeHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return attributeError(c, "Deleting category", err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
