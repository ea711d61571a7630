package repositories

import (
	"attire/internal/models"
)

// PromotionRepository defines the interface for promotion data access.
type PromotionRepository interface {
	GetAll() ([]models.Promotion, error)
	GetByID(id string) (*models.Promotion, error)
	GetByCode(code string) (*models.Promotion, error)
	Create(promotion *models.Promotion) error
	Update(promotion *models.Promotion) error
	Delete(id string) error
}
