package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type ServiceRequestPayload struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	SerialNumber string `json:"serial_number"`
	IssueSummary string `json:"issue_summary" validate:"required"`
	IssueDetail  string `json:"issue_detail"`
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	City         string `json:"city"`
	Address      string `json:"address"`
}

type ServiceRequestService struct {
	requestRepo repositories.ServiceRequestRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewServiceRequestService(
	requestRepo repositories.ServiceRequestRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
) *ServiceRequestService {
	return &ServiceRequestService{requestRepo: requestRepo, productRepo: productRepo}
}

// Create files a service ticket and hands back its reference code for
// tracking.
func (s *ServiceRequestService) Create(ctx context.Context, payload ServiceRequestPayload) (*models.ServiceRequest, error) {
	request := &models.ServiceRequest{
		ReferenceCode: newServiceReference(),
		ProductName:   payload.ProductName,
		SerialNumber:  payload.SerialNumber,
		IssueSummary:  payload.IssueSummary,
		IssueDetail:   payload.IssueDetail,
		CustomerName:  payload.CustomerName,
		Email:         payload.Email,
		Phone:         payload.Phone,
		City:          payload.City,
		Address:       payload.Address,
		Status:        models.ServiceRequestStatusOpen,
	}

	if payload.ProductID != "" {
		product, err := s.productRepo.GetByID(ctx, payload.ProductID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to fetch product: %w", err)
			}
		} else {
			request.ProductID = &product.ID
			if request.ProductName == "" {
				request.ProductName = product.Name
			}
		}
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	return request, nil
}

func (s *ServiceRequestService) Track(ctx context.Context, referenceCode string) (*models.ServiceRequest, error) {
	request, err := s.requestRepo.GetByReference(ctx, referenceCode)
	if err != nil {
		return nil, ErrServiceRequestNotFound
	}
	return request, nil
}

func newServiceReference() string {
	return "SR-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}
