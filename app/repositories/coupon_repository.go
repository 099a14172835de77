package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type CouponRepositoryImpl interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepositoryImpl {
	return &CouponRepository{db}
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).First(&coupon, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}
