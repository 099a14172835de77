package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type ServiceRequestRepositoryImpl interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	GetByReference(ctx context.Context, referenceCode string) (*models.ServiceRequest, error)
	GetAll(ctx context.Context, status string) ([]models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ServiceRequestRepository struct {
	DB *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) ServiceRequestRepositoryImpl {
	return &ServiceRequestRepository{db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	return r.DB.WithContext(ctx).Create(request).Error
}

func (r *ServiceRequestRepository) GetByReference(ctx context.Context, referenceCode string) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.DB.WithContext(ctx).
		Preload("Product").
		First(&request, "reference_code = ?", referenceCode).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *ServiceRequestRepository) GetAll(ctx context.Context, status string) ([]models.ServiceRequest, error) {
	query := r.DB.WithContext(ctx).Model(&models.ServiceRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.ServiceRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.DB.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
