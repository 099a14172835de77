package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	AddBatch(ctx context.Context, items []models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	UpdateBatch(ctx context.Context, items []models.CartItem) error
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error)
	GetByCartAndProduct(ctx context.Context, cartID, productID string) (*models.CartItem, error)
	GetChildren(ctx context.Context, parentID string) ([]models.CartItem, error)
	DeleteWithChildren(ctx context.Context, cartID, itemID string) error
	ClearCart(ctx context.Context, cartID string) error
}

type CartItemRepository struct {
	DB *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// AddBatch writes all rows of one bundle-add operation atomically, so a
// half-composed bundle can never land in the cart.
func (r *CartItemRepository) AddBatch(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *CartItemRepository) UpdateBatch(ctx context.Context, items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Save(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CartItemRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartItemRepository) GetByCartAndProduct(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND bundle_id IS NULL AND parent_cart_item_id IS NULL", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) GetChildren(ctx context.Context, parentID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("parent_cart_item_id = ?", parentID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteWithChildren removes a row and, when it is a bundle parent, every
// child row linked via parent_cart_item_id, in one transaction.
func (r *CartItemRepository) DeleteWithChildren(ctx context.Context, cartID, itemID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ? AND parent_cart_item_id = ?", cartID, itemID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ? AND id = ?", cartID, itemID).
			Delete(&models.CartItem{}).Error
	})
}

func (r *CartItemRepository) ClearCart(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
