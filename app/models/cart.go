package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartItems      []CartItem      `json:"items"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(16,2)" json:"subtotal"`
	BundleSavings  decimal.Decimal `gorm:"type:decimal(16,2)" json:"bundle_savings"`
	CouponCode     string          `gorm:"size:50" json:"coupon_code,omitempty"`
	CouponDiscount decimal.Decimal `gorm:"type:decimal(16,2)" json:"coupon_discount"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2)" json:"grand_total"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}
