package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPercentOf(t *testing.T) {
	assert.True(t, d("1000").Equal(PercentOf(d("5000"), d("20"))))
	assert.True(t, decimal.Zero.Equal(PercentOf(d("5000"), decimal.Zero)))
}

func TestApplyPercentDiscount(t *testing.T) {
	assert.True(t, d("4000").Equal(ApplyPercentDiscount(d("5000"), d("20"))))
	assert.True(t, d("5000").Equal(ApplyPercentDiscount(d("5000"), decimal.Zero)))

	// over 100% clamps to zero instead of going negative
	assert.True(t, decimal.Zero.Equal(ApplyPercentDiscount(d("5000"), d("150"))))
}

func TestApplyFixedPrice(t *testing.T) {
	assert.True(t, d("4500").Equal(ApplyFixedPrice(d("5000"), d("4500"))))

	// a fixed price above the original clamps to the original
	assert.True(t, d("5000").Equal(ApplyFixedPrice(d("5000"), d("6000"))))

	// a negative fixed price clamps to zero
	assert.True(t, decimal.Zero.Equal(ApplyFixedPrice(d("5000"), d("-100"))))
}

func TestSavingsPercent(t *testing.T) {
	assert.True(t, d("20").Equal(SavingsPercent(d("5000"), d("1000"))))
	assert.True(t, d("10").Equal(SavingsPercent(d("5000"), d("500"))))

	// zero original never divides by zero
	assert.True(t, decimal.Zero.Equal(SavingsPercent(decimal.Zero, decimal.Zero)))
}
