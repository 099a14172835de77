package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type DealerRegistration struct {
	BusinessName string `json:"business_name" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	City         string `json:"city" validate:"required"`
	Address      string `json:"address"`
	TaxNumber    string `json:"tax_number"`
	Password     string `json:"password" validate:"required,min=8"`
}

type DealerService struct {
	dealerRepo repositories.DealerRepositoryImpl
}

func NewDealerService(dealerRepo repositories.DealerRepositoryImpl) *DealerService {
	return &DealerService{dealerRepo: dealerRepo}
}

// Register files a dealer application in pending status. One application
// per email address.
func (s *DealerService) Register(ctx context.Context, reg DealerRegistration) (*models.Dealer, error) {
	_, err := s.dealerRepo.GetByEmail(ctx, reg.Email)
	if err == nil {
		return nil, ErrDealerEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing dealer: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dealer := &models.Dealer{
		BusinessName: reg.BusinessName,
		ContactName:  reg.ContactName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		City:         reg.City,
		Address:      reg.Address,
		TaxNumber:    reg.TaxNumber,
		Password:     string(hashed),
		Status:       models.DealerStatusPending,
	}
	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, fmt.Errorf("failed to create dealer application: %w", err)
	}
	return dealer, nil
}
