package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = 1
	OrderStatusProcessing = 2
	OrderStatusShipped    = 3
	OrderStatusCompleted  = 4
	OrderStatusCancelled  = 5
	OrderStatusRefunded   = 6
	OrderStatusFailed     = 7
)

type Order struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderCode string    `gorm:"type:varchar(50);unique;not null" json:"order_code"`
	OrderDate time.Time `gorm:"not null" json:"order_date"`
	CartID    string    `gorm:"size:36;index" json:"-"`

	OrderItems     []OrderItem     `json:"items"`
	Customer       *OrderCustomer  `json:"customer,omitempty"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(16,2)" json:"subtotal"`
	BundleSavings  decimal.Decimal `gorm:"type:decimal(16,2)" json:"bundle_savings"`
	CouponCode     string          `gorm:"size:50" json:"coupon_code,omitempty"`
	CouponDiscount decimal.Decimal `gorm:"type:decimal(16,2)" json:"coupon_discount"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2)" json:"grand_total"`

	PaymentMethod         string `gorm:"size:50" json:"payment_method"`
	PaymentStatus         string `gorm:"size:100" json:"payment_status"`
	MidtransTransactionID string `gorm:"size:255;index" json:"-"`
	PaymentURL            string `gorm:"type:text" json:"payment_url,omitempty"`

	Status int `gorm:"default:1" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

type OrderCustomer struct {
	ID      string `gorm:"type:char(36);primaryKey" json:"-"`
	OrderID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"-"`

	FirstName string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(255)" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`
	Address1  string `gorm:"type:varchar(255);not null" json:"address1"`
	Address2  string `gorm:"type:varchar(255)" json:"address2"`
	City      string `gorm:"type:varchar(100);not null" json:"city"`
	PostCode  string `gorm:"type:varchar(10)" json:"post_code"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (oc *OrderCustomer) BeforeCreate(tx *gorm.DB) (err error) {
	if oc.ID == "" {
		oc.ID = uuid.New().String()
	}
	return
}
