package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreate(ctx context.Context, cartID string) (*models.Cart, error)
	GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	SaveSummary(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, cartID string) error
}

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &CartRepository{db}
}

func (r *CartRepository) GetOrCreate(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).FirstOrCreate(&cart, models.Cart{ID: cartID}).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).
		Preload("CartItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("CartItems.Product.Images").
		Preload("CartItems.Bundle").
		FirstOrCreate(&cart, models.Cart{ID: cartID}).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// SaveSummary writes the aggregate columns only; items are persisted by the
// cart item repository.
func (r *CartRepository) SaveSummary(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cart.ID).
		Select("Subtotal", "BundleSavings", "CouponCode", "CouponDiscount", "GrandTotal").
		Updates(map[string]interface{}{
			"subtotal":        cart.Subtotal,
			"bundle_savings":  cart.BundleSavings,
			"coupon_code":     cart.CouponCode,
			"coupon_discount": cart.CouponDiscount,
			"grand_total":     cart.GrandTotal,
		}).Error
}

func (r *CartRepository) DeleteCart(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", cartID).Error
	})
}
