package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type BundleRepositoryImpl interface {
	GetAll(ctx context.Context, onlyAvailable bool) ([]models.Bundle, error)
	GetByID(ctx context.Context, id string) (*models.Bundle, error)
	GetBySlug(ctx context.Context, slug string) (*models.Bundle, error)
	Create(ctx context.Context, bundle *models.Bundle) error
	Update(ctx context.Context, bundle *models.Bundle) error
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, tx *gorm.DB, bundleID string, qty int) error
}

type BundleRepository struct {
	DB *gorm.DB
}

func NewBundleRepository(db *gorm.DB) BundleRepositoryImpl {
	return &BundleRepository{db}
}

func (r *BundleRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Items.Product.Images").
		Preload("Items").
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("bundle_slots.position ASC")
		}).
		Preload("Slots.Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("bundle_slot_products.position ASC")
		}).
		Preload("Slots.Products.Product.Images")
}

func (r *BundleRepository) GetAll(ctx context.Context, onlyAvailable bool) ([]models.Bundle, error) {
	query := r.preloaded(ctx)
	if onlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var bundles []models.Bundle
	if err := query.Order("created_at DESC").Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *BundleRepository) GetByID(ctx context.Context, id string) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := r.preloaded(ctx).First(&bundle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *BundleRepository) GetBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := r.preloaded(ctx).First(&bundle, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *BundleRepository) Create(ctx context.Context, bundle *models.Bundle) error {
	return r.DB.WithContext(ctx).Create(bundle).Error
}

func (r *BundleRepository) Update(ctx context.Context, bundle *models.Bundle) error {
	return r.DB.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(bundle).Error
}

func (r *BundleRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&models.Bundle{}, "id = ?", id).Error
}

// DecrementStock reduces stock_remaining for limited bundles. Bundles with
// NULL stock_remaining are unlimited and left untouched.
func (r *BundleRepository) DecrementStock(ctx context.Context, tx *gorm.DB, bundleID string, qty int) error {
	db := r.DB
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.Bundle{}).
		Where("id = ? AND stock_remaining IS NOT NULL AND stock_remaining >= ?", bundleID, qty).
		UpdateColumn("stock_remaining", gorm.Expr("stock_remaining - ?", qty)).Error
}
