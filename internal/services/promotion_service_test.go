package services_test

import (
	"testing"
	"time"

	"attire/internal/models"
	"attire/internal/repositories"
	"attire/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestPromotionService_CreatePromotionNormalizesCode(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	svc := services.NewPromotionService(repo)

	promo := &models.Promotion{Code: " welcome10 ", Type: models.PromotionTypePercentage, Discount: 10, Active: true}
	assert.NoError(t, svc.CreatePromotion(promo))
	assert.Equal(t, "WELCOME10", promo.Code)

	// A second promotion with the same code in any casing is rejected.
	err := svc.CreatePromotion(&models.Promotion{Code: "Welcome10", Type: models.PromotionTypeFixed, Discount: 5, Active: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPromotionService_RedeemPercentage(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	svc := services.NewPromotionService(repo)
	assert.NoError(t, svc.CreatePromotion(&models.Promotion{Code: "WELCOME10", Type: models.PromotionTypePercentage, Discount: 10, Active: true}))

	// Redemption is case-insensitive and counts one use.
	amount, err := svc.Redeem("welcome10", 200)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, amount)

	promos, err := svc.GetAllPromotions()
	assert.NoError(t, err)
	assert.Equal(t, 1, promos[0].Uses)
}

func TestPromotionService_RedeemFixedClampsToSubtotal(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	svc := services.NewPromotionService(repo)
	assert.NoError(t, svc.CreatePromotion(&models.Promotion{Code: "FLAT50", Type: models.PromotionTypeFixed, Discount: 50, Active: true}))

	amount, err := svc.Redeem("FLAT50", 30)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, amount)
}

func TestPromotionService_RedeemRejections(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	svc := services.NewPromotionService(repo)

	past := time.Now().Add(-time.Hour)
	assert.NoError(t, svc.CreatePromotion(&models.Promotion{Code: "INACTIVE", Type: models.PromotionTypePercentage, Discount: 10}))
	assert.NoError(t, svc.CreatePromotion(&models.Promotion{Code: "EXPIRED", Type: models.PromotionTypePercentage, Discount: 10, Active: true, ExpiresAt: &past}))
	assert.NoError(t, svc.CreatePromotion(&models.Promotion{Code: "USEDUP", Type: models.PromotionTypePercentage, Discount: 10, Active: true, MaxUses: 1, Uses: 1}))

	for _, code := range []string{"NOSUCHCODE", "INACTIVE", "EXPIRED", "USEDUP"} {
		_, err := svc.Redeem(code, 100)
		assert.ErrorIs(t, err, services.ErrPromotionInvalid, "code %s", code)
	}

	// Rejected redemptions never count a use.
	promos, err := svc.GetAllPromotions()
	assert.NoError(t, err)
	for _, p := range promos {
		if p.Code == "USEDUP" {
			assert.Equal(t, 1, p.Uses)
		} else {
			assert.Zero(t, p.Uses)
		}
	}
}

func TestPromotionService_SetActive(t *testing.T) {
	repo := repositories.NewMockPromotionRepository()
	svc := services.NewPromotionService(repo)

	promo := &models.Promotion{Code: "FALL25", Type: models.PromotionTypePercentage, Discount: 25}
	assert.NoError(t, svc.CreatePromotion(promo))

	updated, err := svc.SetActive(promo.ID, true)
	assert.NoError(t, err)
	assert.True(t, updated.Active)

	amount, err := svc.Redeem("FALL25", 100)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, amount)

	updated, err = svc.SetActive(promo.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = svc.Redeem("FALL25", 100)
	assert.ErrorIs(t, err, services.ErrPromotionInvalid)
}
