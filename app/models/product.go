package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description     string          `gorm:"type:text" json:"description"`
	Sku             string          `gorm:"size:100;uniqueIndex" json:"sku"`
	Brand           string          `gorm:"size:100" json:"brand"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"discounted_price"`
	Stock           int             `gorm:"not null" json:"stock"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	WarrantyMonths  int             `gorm:"default:12" json:"warranty_months"`
	Categories      []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Images          []ProductImage  `json:"images,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// EffectivePrice is the price a product sells for on its own: the
// discounted price when one is set, the list price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice.IsPositive() && p.DiscountedPrice.LessThan(p.Price) {
		return p.DiscountedPrice
	}
	return p.Price
}

type ProductImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string    `gorm:"size:36;index" json:"product_id"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"-"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}

type ProductCategory struct {
	ProductID  string `gorm:"size:36;primaryKey"`
	CategoryID string `gorm:"size:36;primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
