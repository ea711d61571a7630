package repositories

import (
	"fmt"

	"attire/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPromotionRepository is a GORM implementation of PromotionRepository.
type GORMPromotionRepository struct {
	db *gorm.DB
}

// NewGORMPromotionRepository creates a new instance of GORMPromotionRepository.
func NewGORMPromotionRepository(db *gorm.DB) *GORMPromotionRepository {
	return &GORMPromotionRepository{
		db: db,
	}
}

// GetAll retrieves all promotions from the database.
func (r *GORMPromotionRepository) GetAll() ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Order("created_at asc").Find(&promotions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all promotions: %w", err)
	}
	return promotions, nil
}

// GetByID retrieves a single promotion by its ID from the database.
func (r *GORMPromotionRepository) GetByID(id string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.First(&promotion, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("promotion with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get promotion by ID %s: %w", id, err)
	}
	return &promotion, nil
}

// GetByCode retrieves a single promotion by its code from the database.
func (r *GORMPromotionRepository) GetByCode(code string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := r.db.First(&promotion, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("promotion with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get promotion by code %s: %w", code, err)
	}
	return &promotion, nil
}

// Create creates a new promotion in the database.
func (r *GORMPromotionRepository) Create(promotion *models.Promotion) error {
	if promotion.ID == "" {
		promotion.ID = uuid.New().String()
	}
	if err := r.db.Create(promotion).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Update updates an existing promotion in the database.
func (r *GORMPromotionRepository) Update(promotion *models.Promotion) error {
	res := r.db.Save(promotion)
	if res.Error != nil {
		return fmt.Errorf("failed to update promotion: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("promotion with ID %s not found for update", promotion.ID)
	}
	return nil
}

// Delete deletes a promotion by its ID from the database.
func (r *GORMPromotionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Promotion{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete promotion: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("promotion with ID %s not found for deletion", id)
	}
	return nil
}
