package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"attire/internal/models"
	"attire/internal/repositories"
)

// ErrPromotionInvalid marks a promo code that cannot be redeemed: unknown,
// inactive, expired or exhausted. Handlers treat it as a shopper input error.
var ErrPromotionInvalid = errors.New("promotion not valid")

// PromotionService handles business logic for discount codes.
type PromotionService struct {
	repo repositories.PromotionRepository
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(repo repositories.PromotionRepository) *PromotionService {
	return &PromotionService{
		repo: repo,
	}
}

// GetAllPromotions retrieves all promotions.
func (s *PromotionService) GetAllPromotions() ([]models.Promotion, error) {
	return s.repo.GetAll()
}

// GetPromotionByID retrieves a single promotion by its ID.
func (s *PromotionService) GetPromotionByID(id string) (*models.Promotion, error) {
	return s.repo.GetByID(id)
}

// CreatePromotion creates a new promotion. Codes are stored uppercase so
// redemption is case-insensitive.
func (s *PromotionService) CreatePromotion(promotion *models.Promotion) error {
	promotion.Code = strings.ToUpper(strings.TrimSpace(promotion.Code))
	if existing, err := s.repo.GetByCode(promotion.Code); err == nil && existing != nil {
		return fmt.Errorf("promotion with code %s already exists", promotion.Code)
	}
	return s.repo.Create(promotion)
}

// UpdatePromotion updates an existing promotion.
func (s *PromotionService) UpdatePromotion(promotion *models.Promotion) error {
	promotion.Code = strings.ToUpper(strings.TrimSpace(promotion.Code))
	return s.repo.Update(promotion)
}

// DeletePromotion deletes a promotion by its ID.
func (s *PromotionService) DeletePromotion(id string) error {
	return s.repo.Delete(id)
}

// SetActive activates or deactivates a promotion.
func (s *PromotionService) SetActive(id string, active bool) (*models.Promotion, error) {
	promotion, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	promotion.Active = active
	if err := s.repo.Update(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// Redeem validates the code against the given order subtotal and returns the
// discount amount, counting one use. Every rejection wraps
// ErrPromotionInvalid.
func (s *PromotionService) Redeem(code string, subtotal float64) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	promotion, err := s.repo.GetByCode(code)
	if err != nil {
		return 0, fmt.Errorf("code %s not recognized: %w", code, ErrPromotionInvalid)
	}
	if !promotion.Active {
		return 0, fmt.Errorf("code %s is not active: %w", code, ErrPromotionInvalid)
	}
	if promotion.Expired(time.Now()) {
		return 0, fmt.Errorf("code %s has expired: %w", code, ErrPromotionInvalid)
	}
	if promotion.Exhausted() {
		return 0, fmt.Errorf("code %s has reached its redemption limit: %w", code, ErrPromotionInvalid)
	}

	promotion.Uses++
	if err := s.repo.Update(promotion); err != nil {
		return 0, fmt.Errorf("failed to record redemption of code %s: %w", code, err)
	}
	return promotion.Amount(subtotal), nil
}
