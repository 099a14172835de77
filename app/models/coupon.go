package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CouponType string

const (
	CouponPercentage  CouponType = "percentage"
	CouponFixedAmount CouponType = "fixed_amount"
)

type Coupon struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Code        string          `gorm:"size:50;not null;uniqueIndex" json:"code"`
	CouponType  CouponType      `gorm:"size:20;not null" json:"coupon_type"`
	Value       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"value"`
	MinSubtotal decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"min_subtotal"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// DiscountFor computes the coupon's discount against a subtotal, capped so
// the discount never exceeds the subtotal itself.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.CouponType {
	case CouponPercentage:
		d = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponFixedAmount:
		d = c.Value
	}
	if d.GreaterThan(subtotal) {
		return subtotal
	}
	return d
}

// Usable reports whether the coupon can be applied right now to the given
// subtotal.
func (c *Coupon) Usable(subtotal decimal.Decimal, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return subtotal.GreaterThanOrEqual(c.MinSubtotal)
}
