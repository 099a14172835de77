package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf returns percent% of base.
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(hundred)
}

// ApplyPercentDiscount subtracts percent% from base, clamped to [0, base].
func ApplyPercentDiscount(base, percent decimal.Decimal) decimal.Decimal {
	discounted := base.Sub(PercentOf(base, percent))
	return clamp(discounted, base)
}

// ApplyFixedPrice interprets price as the amount the buyer pays outright.
// The result is clamped to [0, base] so a misconfigured fixed price can
// never exceed the undiscounted total.
func ApplyFixedPrice(base, price decimal.Decimal) decimal.Decimal {
	return clamp(price, base)
}

// SavingsPercent returns savings as a percentage of original. A zero
// original yields zero rather than a division error.
func SavingsPercent(original, savings decimal.Decimal) decimal.Decimal {
	if original.IsZero() {
		return decimal.Zero
	}
	return savings.Div(original).Mul(hundred)
}

func clamp(v, max decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}
