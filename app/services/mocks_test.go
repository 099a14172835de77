package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type MockCartRepository struct {
	mock.Mock
}

var _ repositories.CartRepositoryImpl = (*MockCartRepository)(nil)

func (m *MockCartRepository) GetOrCreate(ctx context.Context, cartID string) (*models.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) SaveSummary(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}

type MockCartItemRepository struct {
	mock.Mock
}

var _ repositories.CartItemRepositoryImpl = (*MockCartItemRepository)(nil)

func (m *MockCartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartItemRepository) AddBatch(ctx context.Context, items []models.CartItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MockCartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartItemRepository) UpdateBatch(ctx context.Context, items []models.CartItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MockCartItemRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) GetByCartAndProduct(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) GetChildren(ctx context.Context, parentID string) ([]models.CartItem, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) DeleteWithChildren(ctx context.Context, cartID, itemID string) error {
	return m.Called(ctx, cartID, itemID).Error(0)
}

func (m *MockCartItemRepository) ClearCart(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

var _ repositories.ProductRepositoryImpl = (*MockProductRepository)(nil)

func (m *MockProductRepository) GetAll(ctx context.Context, categorySlug, search string, limit, offset int) ([]models.Product, int64, error) {
	args := m.Called(ctx, categorySlug, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error {
	return m.Called(ctx, tx, productID, qty).Error(0)
}

type MockBundleRepository struct {
	mock.Mock
}

var _ repositories.BundleRepositoryImpl = (*MockBundleRepository)(nil)

func (m *MockBundleRepository) GetAll(ctx context.Context, onlyAvailable bool) ([]models.Bundle, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bundle), args.Error(1)
}

func (m *MockBundleRepository) GetByID(ctx context.Context, id string) (*models.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bundle), args.Error(1)
}

func (m *MockBundleRepository) GetBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bundle), args.Error(1)
}

func (m *MockBundleRepository) Create(ctx context.Context, bundle *models.Bundle) error {
	return m.Called(ctx, bundle).Error(0)
}

func (m *MockBundleRepository) Update(ctx context.Context, bundle *models.Bundle) error {
	return m.Called(ctx, bundle).Error(0)
}

func (m *MockBundleRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBundleRepository) DecrementStock(ctx context.Context, tx *gorm.DB, bundleID string, qty int) error {
	return m.Called(ctx, tx, bundleID, qty).Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

var _ repositories.OrderRepositoryImpl = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, fn func(tx *gorm.DB) error) error {
	return m.Called(ctx, order, fn).Error(0)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdatePayment(ctx context.Context, orderID, transactionID, paymentURL, status string) error {
	return m.Called(ctx, orderID, transactionID, paymentURL, status).Error(0)
}

type MockCouponRepository struct {
	mock.Mock
}

var _ repositories.CouponRepositoryImpl = (*MockCouponRepository)(nil)

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}
