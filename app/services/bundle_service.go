package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type BundleService struct {
	bundleRepo repositories.BundleRepositoryImpl
}

func NewBundleService(bundleRepo repositories.BundleRepositoryImpl) *BundleService {
	return &BundleService{bundleRepo: bundleRepo}
}

func (s *BundleService) ListAvailable(ctx context.Context) ([]models.Bundle, error) {
	bundles, err := s.bundleRepo.GetAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list bundles: %w", err)
	}
	return bundles, nil
}

func (s *BundleService) GetBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	bundle, err := s.bundleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, fmt.Errorf("failed to fetch bundle %s: %w", slug, err)
	}
	return bundle, nil
}

// Quote recomputes the authoritative price breakdown for a selection
// payload. Unknown slots/products in the payload are dropped rather than
// rejected: a stale preview should still price.
func (s *BundleService) Quote(ctx context.Context, slug string, raw map[string][]string) (PricingBreakdown, SelectionStatus, error) {
	bundle, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return PricingBreakdown{}, SelectionStatus{}, err
	}

	sel := SanitizeSelections(bundle, raw)
	status := ValidateSelections(bundle, sel)
	breakdown := CalculateBundlePrice(bundle, sel)
	return breakdown, status, nil
}
