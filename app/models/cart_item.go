package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SlotSelectionSnapshot captures what the customer picked into a bundle
// slot at add-to-cart time. It is display data only; prices are locked on
// the cart item itself.
type SlotSelectionSnapshot struct {
	SlotID       string `json:"slot_id"`
	SlotName     string `json:"slot_name"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image,omitempty"`
}

type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Cart      *Cart    `gorm:"foreignKey:CartID" json:"-"`
	CartID    string   `gorm:"size:36;index" json:"-"`
	ProductID *string  `gorm:"size:36;index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BundleID  *string  `gorm:"size:36;index" json:"bundle_id,omitempty"`
	Bundle    *Bundle  `gorm:"foreignKey:BundleID" json:"bundle,omitempty"`

	// IsBundleItem marks child rows spawned by an individual-display
	// bundle; ParentCartItemID links them to their parent bundle row.
	IsBundleItem     bool        `gorm:"default:false" json:"is_bundle_item"`
	ParentCartItemID *string     `gorm:"size:36;index" json:"parent_cart_item_id,omitempty"`
	DisplayMode      CartDisplay `gorm:"size:20" json:"display_mode,omitempty"`

	BundleSlotSelections datatypes.JSONSlice[SlotSelectionSnapshot] `json:"bundle_slot_selections,omitempty"`

	Quantity       int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(16,2)" json:"unit_price"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(16,2)" json:"total_price"`
	BundleDiscount decimal.Decimal `gorm:"type:decimal(16,2)" json:"bundle_discount"`
	IsAvailable    bool            `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
