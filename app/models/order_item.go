package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem snapshots a cart row at checkout. Bundle rows carry the same
// parent/child linkage and selection snapshot the cart rows did, so an
// order can be displayed exactly as the cart was.
type OrderItem struct {
	ID          string  `gorm:"primaryKey;size:36;not null;uniqueIndex" json:"id"`
	OrderID     string  `gorm:"size:36;not null;index" json:"order_id"`
	ProductID   *string `gorm:"size:36;index" json:"product_id,omitempty"`
	BundleID    *string `gorm:"size:36;index" json:"bundle_id,omitempty"`
	ProductName string  `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductSku  string  `gorm:"type:varchar(100)" json:"product_sku"`

	IsBundleItem      bool        `gorm:"default:false" json:"is_bundle_item"`
	ParentOrderItemID *string     `gorm:"size:36;index" json:"parent_order_item_id,omitempty"`
	DisplayMode       CartDisplay `gorm:"size:20" json:"display_mode,omitempty"`

	BundleSlotSelections datatypes.JSONSlice[SlotSelectionSnapshot] `json:"bundle_slot_selections,omitempty"`

	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_price"`
	BundleDiscount decimal.Decimal `gorm:"type:decimal(16,2)" json:"bundle_discount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
