package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context, categorySlug, search string, limit, offset int) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error
}

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &ProductRepository{db}
}

func (r *ProductRepository) GetAll(ctx context.Context, categorySlug, search string, limit, offset int) ([]models.Product, int64, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Preload("Images").
		Preload("Categories")

	if categorySlug != "" {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.slug = ?", categorySlug)
	}

	if search != "" {
		query = query.Where("products.name LIKE ? OR products.brand LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := query.Limit(limit).Offset(offset).Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Preload("Images").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images").
		Preload("Categories").
		First(&product, "slug = ? AND is_active = ?", slug, true).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error {
	db := r.DB
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error
}
