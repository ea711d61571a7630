package handlers

import (
	"log"

	"attire/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the dashboard route.
func (h *DashboardHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetStats)
}

// HandleGetStats computes and returns the dashboard aggregates.
func (h *DashboardHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}
