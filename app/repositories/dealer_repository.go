package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type DealerRepositoryImpl interface {
	Create(ctx context.Context, dealer *models.Dealer) error
	GetByEmail(ctx context.Context, email string) (*models.Dealer, error)
	GetAll(ctx context.Context, status string) ([]models.Dealer, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type DealerRepository struct {
	DB *gorm.DB
}

func NewDealerRepository(db *gorm.DB) DealerRepositoryImpl {
	return &DealerRepository{db}
}

func (r *DealerRepository) Create(ctx context.Context, dealer *models.Dealer) error {
	return r.DB.WithContext(ctx).Create(dealer).Error
}

func (r *DealerRepository) GetByEmail(ctx context.Context, email string) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := r.DB.WithContext(ctx).First(&dealer, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (r *DealerRepository) GetAll(ctx context.Context, status string) ([]models.Dealer, error) {
	query := r.DB.WithContext(ctx).Model(&models.Dealer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var dealers []models.Dealer
	if err := query.Order("created_at DESC").Find(&dealers).Error; err != nil {
		return nil, err
	}
	return dealers, nil
}

func (r *DealerRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.DB.WithContext(ctx).
		Model(&models.Dealer{}).
		Where("id = ?", id).
		Update("status", status).Error
}
