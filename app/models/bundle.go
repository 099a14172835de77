package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BundleType string

const (
	BundleTypeFixed        BundleType = "fixed"
	BundleTypeConfigurable BundleType = "configurable"
)

type DiscountType string

const (
	// DiscountFixedPrice sells the bundle at DiscountValue outright.
	DiscountFixedPrice DiscountType = "fixed_price"
	// DiscountPercentage knocks DiscountValue percent off the original price.
	DiscountPercentage DiscountType = "percentage"
)

// CartDisplay controls how a bundle materializes as cart rows.
type CartDisplay string

const (
	CartDisplaySingleItem CartDisplay = "single_item"
	CartDisplayGrouped    CartDisplay = "grouped"
	CartDisplayIndividual CartDisplay = "individual"
)

type Bundle struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Slug           string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	BundleType     BundleType      `gorm:"size:20;not null;default:fixed" json:"bundle_type"`
	DiscountType   DiscountType    `gorm:"size:20;not null;default:percentage" json:"discount_type"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"discount_value"`
	CartDisplay    CartDisplay     `gorm:"size:20;not null;default:single_item" json:"cart_display"`
	IsAvailable    bool            `gorm:"default:true" json:"is_available"`
	StockRemaining *int            `json:"stock_remaining,omitempty"`
	ShowSavings    bool            `gorm:"default:true" json:"show_savings"`
	ShowCountdown  bool            `gorm:"default:false" json:"show_countdown"`
	EndsAt         *time.Time      `json:"ends_at,omitempty"`
	CtaText        string          `gorm:"size:100" json:"cta_text"`
	BadgeText      string          `gorm:"size:50" json:"badge_text"`
	BadgeColor     string          `gorm:"size:20" json:"badge_color"`
	Items          []BundleItem    `gorm:"foreignKey:BundleID" json:"items,omitempty"`
	Slots          []BundleSlot    `gorm:"foreignKey:BundleID" json:"slots,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (b *Bundle) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// Expired reports whether the bundle's countdown window has passed.
func (b *Bundle) Expired(now time.Time) bool {
	return b.EndsAt != nil && now.After(*b.EndsAt)
}

// Slot returns the slot with the given ID, or nil when the bundle has no
// such slot.
func (b *Bundle) Slot(slotID string) *BundleSlot {
	for i := range b.Slots {
		if b.Slots[i].ID == slotID {
			return &b.Slots[i]
		}
	}
	return nil
}

// BundleItem is one predetermined line of a fixed bundle.
type BundleItem struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	BundleID       string          `gorm:"size:36;index" json:"bundle_id"`
	ProductID      string          `gorm:"size:36;index" json:"product_id"`
	Product        *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity       int             `gorm:"not null;default:1" json:"quantity"`
	EffectivePrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"effective_price"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}

func (bi *BundleItem) BeforeCreate(tx *gorm.DB) (err error) {
	if bi.ID == "" {
		bi.ID = uuid.New().String()
	}
	return
}

func (bi *BundleItem) LineTotal() decimal.Decimal {
	return bi.EffectivePrice.Mul(decimal.NewFromInt(int64(bi.Quantity)))
}

// BundleSlot is a named selection point of a configurable bundle.
// Invariant: MinSelections <= MaxSelections; a slot that does not allow
// multiple selections is capped at one regardless of MaxSelections.
type BundleSlot struct {
	ID             string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	BundleID       string              `gorm:"size:36;index" json:"bundle_id"`
	Name           string              `gorm:"size:100;not null" json:"name"`
	Description    string              `gorm:"size:255" json:"description"`
	Position       int                 `gorm:"default:0" json:"position"`
	IsRequired     bool                `gorm:"default:true" json:"is_required"`
	AllowsMultiple bool                `gorm:"default:false" json:"allows_multiple"`
	MinSelections  int                 `gorm:"default:1" json:"min_selections"`
	MaxSelections  int                 `gorm:"default:1" json:"max_selections"`
	Products       []BundleSlotProduct `gorm:"foreignKey:SlotID" json:"products,omitempty"`
	CreatedAt      time.Time           `json:"-"`
	UpdatedAt      time.Time           `json:"-"`
}

func (bs *BundleSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if bs.ID == "" {
		bs.ID = uuid.New().String()
	}
	return
}

// SelectionCap is the effective upper bound on selections for this slot.
func (bs *BundleSlot) SelectionCap() int {
	if !bs.AllowsMultiple {
		return 1
	}
	return bs.MaxSelections
}

// HasProduct reports whether productID is offered by this slot.
func (bs *BundleSlot) HasProduct(productID string) bool {
	return bs.SlotProduct(productID) != nil
}

func (bs *BundleSlot) SlotProduct(productID string) *BundleSlotProduct {
	for i := range bs.Products {
		if bs.Products[i].ProductID == productID {
			return &bs.Products[i]
		}
	}
	return nil
}

type BundleSlotProduct struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SlotID         string          `gorm:"size:36;index" json:"slot_id"`
	ProductID      string          `gorm:"size:36;index" json:"product_id"`
	Product        *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Position       int             `gorm:"default:0" json:"position"`
	EffectivePrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"effective_price"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}

func (bsp *BundleSlotProduct) BeforeCreate(tx *gorm.DB) (err error) {
	if bsp.ID == "" {
		bsp.ID = uuid.New().String()
	}
	return
}
