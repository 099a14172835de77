package services

import (
	"github.com/shopspring/decimal"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/utils/calc"
)

// PricingBreakdown is the computed price of one bundle configuration.
// SavingsPercentage keeps full precision; rounding is a display concern.
type PricingBreakdown struct {
	OriginalPrice     decimal.Decimal `json:"original_price"`
	DiscountedPrice   decimal.Decimal `json:"discounted_price"`
	Savings           decimal.Decimal `json:"savings"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
}

// CalculateBundlePrice prices a bundle against the current selections. It
// is a pure function of its inputs: recomputing with the same bundle and
// selections always yields the same breakdown.
//
// Fixed bundles price from their item list and ignore selections.
// Configurable bundles sum the effective price of every selected slot
// product; selections referencing slots or products the bundle does not
// offer contribute nothing. An empty selection set prices to zero.
func CalculateBundlePrice(bundle *models.Bundle, sel SlotSelections) PricingBreakdown {
	original := decimal.Zero

	switch bundle.BundleType {
	case models.BundleTypeConfigurable:
		for i := range bundle.Slots {
			slot := &bundle.Slots[i]
			for _, productID := range sel[slot.ID] {
				if sp := slot.SlotProduct(productID); sp != nil {
					original = original.Add(sp.EffectivePrice)
				}
			}
		}
	default:
		for i := range bundle.Items {
			original = original.Add(bundle.Items[i].LineTotal())
		}
	}

	discounted := applyBundleDiscount(bundle, original)
	savings := original.Sub(discounted)

	return PricingBreakdown{
		OriginalPrice:     original,
		DiscountedPrice:   discounted,
		Savings:           savings,
		SavingsPercentage: calc.SavingsPercent(original, savings),
	}
}

func applyBundleDiscount(bundle *models.Bundle, original decimal.Decimal) decimal.Decimal {
	// A zero discount value means "no discount" for either discount type.
	if bundle.DiscountValue.IsZero() {
		return original
	}

	switch bundle.DiscountType {
	case models.DiscountFixedPrice:
		return calc.ApplyFixedPrice(original, bundle.DiscountValue)
	case models.DiscountPercentage:
		return calc.ApplyPercentDiscount(original, bundle.DiscountValue)
	default:
		return original
	}
}
