package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/volthome/storefront/app/models"
)

func fixedBundle(discountType models.DiscountType, discountValue int64) *models.Bundle {
	return &models.Bundle{
		ID:            "bundle-fixed",
		BundleType:    models.BundleTypeFixed,
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(discountValue),
		Items: []models.BundleItem{
			{ProductID: "p-washer", Quantity: 1, EffectivePrice: decimal.NewFromInt(3000)},
			{ProductID: "p-microwave", Quantity: 1, EffectivePrice: decimal.NewFromInt(2000)},
		},
	}
}

func TestCalculateBundlePricePercentage(t *testing.T) {
	bundle := fixedBundle(models.DiscountPercentage, 20)

	breakdown := CalculateBundlePrice(bundle, NewSlotSelections())

	assert.True(t, decimal.NewFromInt(5000).Equal(breakdown.OriginalPrice))
	assert.True(t, decimal.NewFromInt(4000).Equal(breakdown.DiscountedPrice))
	assert.True(t, decimal.NewFromInt(1000).Equal(breakdown.Savings))
	assert.True(t, decimal.NewFromInt(20).Equal(breakdown.SavingsPercentage))
}

func TestCalculateBundlePriceFixedPrice(t *testing.T) {
	bundle := fixedBundle(models.DiscountFixedPrice, 4500)

	breakdown := CalculateBundlePrice(bundle, NewSlotSelections())

	assert.True(t, decimal.NewFromInt(5000).Equal(breakdown.OriginalPrice))
	assert.True(t, decimal.NewFromInt(4500).Equal(breakdown.DiscountedPrice))
	assert.True(t, decimal.NewFromInt(500).Equal(breakdown.Savings))
	assert.True(t, decimal.NewFromInt(10).Equal(breakdown.SavingsPercentage))
}

func TestCalculateBundlePriceZeroDiscountValue(t *testing.T) {
	// discount_value of zero means no discount, for either type
	for _, dt := range []models.DiscountType{models.DiscountPercentage, models.DiscountFixedPrice} {
		bundle := fixedBundle(dt, 0)
		breakdown := CalculateBundlePrice(bundle, NewSlotSelections())

		assert.True(t, decimal.NewFromInt(5000).Equal(breakdown.DiscountedPrice), "type %s", dt)
		assert.True(t, breakdown.Savings.IsZero(), "type %s", dt)
		assert.True(t, breakdown.SavingsPercentage.IsZero(), "type %s", dt)
	}
}

func TestCalculateBundlePriceItemQuantities(t *testing.T) {
	bundle := &models.Bundle{
		BundleType:    models.BundleTypeFixed,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		Items: []models.BundleItem{
			{ProductID: "p-fan", Quantity: 3, EffectivePrice: decimal.NewFromInt(1000)},
		},
	}

	breakdown := CalculateBundlePrice(bundle, NewSlotSelections())
	assert.True(t, decimal.NewFromInt(3000).Equal(breakdown.OriginalPrice))
	assert.True(t, decimal.NewFromInt(2700).Equal(breakdown.DiscountedPrice))
}

func TestCalculateBundlePriceConfigurable(t *testing.T) {
	bundle := testConfigurableBundle()
	sel := NewSlotSelections()
	sel.Pick(bundle.Slot("slot-fridge"), "p-fridge-a")
	sel.Pick(bundle.Slot("slot-ac"), "p-ac-a")
	sel.Pick(bundle.Slot("slot-extras"), "p-dispenser")

	breakdown := CalculateBundlePrice(bundle, sel)

	original := decimal.NewFromInt(92000 + 85000 + 28000)
	assert.True(t, original.Equal(breakdown.OriginalPrice))
	assert.True(t, original.Mul(decimal.NewFromFloat(0.9)).Equal(breakdown.DiscountedPrice))
	assert.True(t, decimal.NewFromInt(10).Equal(breakdown.SavingsPercentage))
}

func TestCalculateBundlePriceEmptySelections(t *testing.T) {
	bundle := testConfigurableBundle()

	breakdown := CalculateBundlePrice(bundle, NewSlotSelections())

	assert.True(t, breakdown.OriginalPrice.IsZero())
	assert.True(t, breakdown.DiscountedPrice.IsZero())
	assert.True(t, breakdown.Savings.IsZero())
	assert.True(t, breakdown.SavingsPercentage.IsZero())
}

func TestCalculateBundlePriceIgnoresUnknownReferences(t *testing.T) {
	bundle := testConfigurableBundle()
	sel := SlotSelections{
		"slot-fridge":  {"p-fridge-a"},
		"slot-unknown": {"p-fridge-b"},
		"slot-ac":      {"p-ghost"},
	}

	breakdown := CalculateBundlePrice(bundle, sel)
	assert.True(t, decimal.NewFromInt(92000).Equal(breakdown.OriginalPrice))
}

func TestCalculateBundlePriceIsDeterministic(t *testing.T) {
	bundle := testConfigurableBundle()
	sel := NewSlotSelections()
	sel.Pick(bundle.Slot("slot-fridge"), "p-fridge-b")
	sel.Pick(bundle.Slot("slot-ac"), "p-ac-b")

	first := CalculateBundlePrice(bundle, sel)
	second := CalculateBundlePrice(bundle, sel)

	assert.True(t, first.OriginalPrice.Equal(second.OriginalPrice))
	assert.True(t, first.DiscountedPrice.Equal(second.DiscountedPrice))
	assert.True(t, first.Savings.Equal(second.Savings))
	assert.True(t, first.SavingsPercentage.Equal(second.SavingsPercentage))
}

func TestCalculateBundlePriceFixedPriceClamped(t *testing.T) {
	// a fixed price above the original can never raise the price
	bundle := fixedBundle(models.DiscountFixedPrice, 9000)
	breakdown := CalculateBundlePrice(bundle, NewSlotSelections())

	assert.True(t, decimal.NewFromInt(5000).Equal(breakdown.DiscountedPrice))
	assert.True(t, breakdown.Savings.IsZero())
}
