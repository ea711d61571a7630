package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount types for promotions.
const (
	PromotionTypePercentage = "percentage"
	PromotionTypeFixed      = "fixed"
)

// Promotion is a discount code managed from the admin console and redeemed at
// checkout.
type Promotion struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code     string  `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,min=3,max=64"`
	Type     string  `json:"type" validate:"required,oneof=percentage fixed"`
	Discount float64 `json:"discount" validate:"gte=0"`
	// ExpiresAt of nil means the code never expires.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// MaxUses of 0 means unlimited redemptions.
	MaxUses    int  `json:"max_uses" validate:"gte=0"`
	Uses       int  `json:"uses"`
	Active     bool `json:"active"`
	gorm.Model      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Expired reports whether the promotion's expiry has passed at the given time.
func (p *Promotion) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// Exhausted reports whether the promotion has reached its redemption cap.
func (p *Promotion) Exhausted() bool {
	return p.MaxUses > 0 && p.Uses >= p.MaxUses
}

// Amount computes the discount value for the given order subtotal. A fixed
// discount never exceeds the subtotal.
func (p *Promotion) Amount(subtotal float64) float64 {
	switch p.Type {
	case PromotionTypePercentage:
		return subtotal * p.Discount / 100
	case PromotionTypeFixed:
		if p.Discount > subtotal {
			return subtotal
		}
		return p.Discount
	}
	return 0
}
