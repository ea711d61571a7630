package repositories

import (
	"fmt"
	"sync"

	"attire/internal/models"

	"github.com/google/uuid"
)

// MockPromotionRepository is an in-memory implementation of PromotionRepository.
type MockPromotionRepository struct {
	promotions map[string]models.Promotion
	order      []string
	mu         sync.RWMutex
}

// NewMockPromotionRepository creates a new instance of MockPromotionRepository.
func NewMockPromotionRepository() *MockPromotionRepository {
	return &MockPromotionRepository{
		promotions: make(map[string]models.Promotion),
	}
}

// GetAll returns all promotions in creation order.
func (r *MockPromotionRepository) GetAll() ([]models.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	promotionList := make([]models.Promotion, 0, len(r.promotions))
	for _, id := range r.order {
		if p, ok := r.promotions[id]; ok {
			promotionList = append(promotionList, p)
		}
	}
	return promotionList, nil
}

// GetByID returns a promotion by its ID.
func (r *MockPromotionRepository) GetByID(id string) (*models.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	promotion, ok := r.promotions[id]
	if !ok {
		return nil, fmt.Errorf("promotion with ID %s not found", id)
	}
	return &promotion, nil
}

// GetByCode returns a promotion by its code.
func (r *MockPromotionRepository) GetByCode(code string) (*models.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.promotions {
		if p.Code == code {
			promotion := p
			return &promotion, nil
		}
	}
	return nil, fmt.Errorf("promotion with code %s not found", code)
}

// Create adds a new promotion, enforcing code uniqueness.
func (r *MockPromotionRepository) Create(promotion *models.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.promotions {
		if p.Code == promotion.Code {
			return fmt.Errorf("promotion with code %s already exists", promotion.Code)
		}
	}
	if promotion.ID == "" {
		promotion.ID = uuid.New().String()
	}
	r.promotions[promotion.ID] = *promotion
	r.order = append(r.order, promotion.ID)
	return nil
}

// Update modifies an existing promotion.
func (r *MockPromotionRepository) Update(promotion *models.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.promotions[promotion.ID]
	if !ok {
		return fmt.Errorf("promotion with ID %s not found for update", promotion.ID)
	}
	r.promotions[promotion.ID] = *promotion
	return nil
}

// Delete removes a promotion by its ID.
func (r *MockPromotionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.promotions[id]
	if !ok {
		return fmt.Errorf("promotion with ID %s not found for deletion", id)
	}
	delete(r.promotions, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
