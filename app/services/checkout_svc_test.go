package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volthome/storefront/app/models"
)

type checkoutServiceMocks struct {
	*cartServiceMocks
	orderRepo *MockOrderRepository
}

func newCheckoutServiceWithMocks() (*CheckoutService, *checkoutServiceMocks) {
	cartSvc, cartMocks := newCartServiceWithMocks()
	m := &checkoutServiceMocks{
		cartServiceMocks: cartMocks,
		orderRepo:        new(MockOrderRepository),
	}
	svc := NewCheckoutService(
		cartSvc,
		m.cartRepo,
		m.cartItemRepo,
		m.productRepo,
		m.bundleRepo,
		m.orderRepo,
		NewPaymentService(),
	)
	return svc, m
}

func codPayload() CheckoutPayload {
	return CheckoutPayload{
		FirstName:     "Ayesha",
		Email:         "ayesha@example.com",
		Phone:         "03001234567",
		Address1:      "House 12, Street 4",
		City:          "Lahore",
		PaymentMethod: "cod",
	}
}

func (m *checkoutServiceMocks) expectCartWithItems(cartID string, items []models.CartItem) *models.Cart {
	cart := &models.Cart{ID: cartID, CartItems: items}
	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].TotalPrice)
	}
	cart.Subtotal = subtotal
	cart.GrandTotal = subtotal

	m.cartRepo.On("GetOrCreate", mock.Anything, cartID).Return(cart, nil)
	m.cartItemRepo.On("GetByCartID", mock.Anything, cartID).Return(items, nil)
	m.cartRepo.On("SaveSummary", mock.Anything, mock.AnythingOfType("*models.Cart")).Return(nil)
	m.cartRepo.On("GetCartWithItems", mock.Anything, cartID).Return(cart, nil)
	return cart
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc, m := newCheckoutServiceWithMocks()
	m.expectCartWithItems("cart-1", nil)

	_, err := svc.CreateOrder(context.Background(), "cart-1", codPayload())

	assert.ErrorIs(t, err, ErrEmptyCart)
	m.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderBundleWentUnavailable(t *testing.T) {
	svc, m := newCheckoutServiceWithMocks()

	bundleID := "bundle-1"
	m.expectCartWithItems("cart-1", []models.CartItem{
		{ID: "item-1", CartID: "cart-1", BundleID: &bundleID, Quantity: 1, TotalPrice: decimal.NewFromInt(4000)},
	})
	m.bundleRepo.On("GetByID", mock.Anything, bundleID).Return(&models.Bundle{
		ID:          bundleID,
		IsAvailable: false,
	}, nil)

	_, err := svc.CreateOrder(context.Background(), "cart-1", codPayload())

	assert.ErrorIs(t, err, ErrBundleUnavailable)
	m.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderProductStockRanOut(t *testing.T) {
	svc, m := newCheckoutServiceWithMocks()

	productID := "p-1"
	m.expectCartWithItems("cart-1", []models.CartItem{
		{ID: "item-1", CartID: "cart-1", ProductID: &productID, Quantity: 5, TotalPrice: decimal.NewFromInt(5000)},
	})
	m.productRepo.On("GetByID", mock.Anything, productID).Return(&models.Product{
		ID:    productID,
		Name:  "Washer",
		Stock: 2,
	}, nil)

	_, err := svc.CreateOrder(context.Background(), "cart-1", codPayload())

	assert.ErrorIs(t, err, ErrInsufficientStock)
	m.orderRepo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCopiesCartTotals(t *testing.T) {
	svc, m := newCheckoutServiceWithMocks()

	productID := "p-1"
	m.expectCartWithItems("cart-1", []models.CartItem{
		{
			ID:         "item-1",
			CartID:     "cart-1",
			ProductID:  &productID,
			Quantity:   2,
			UnitPrice:  decimal.NewFromInt(54000),
			TotalPrice: decimal.NewFromInt(108000),
		},
	})
	m.productRepo.On("GetByID", mock.Anything, productID).Return(&models.Product{
		ID:    productID,
		Name:  "Washer",
		Stock: 10,
	}, nil)

	var created *models.Order
	m.orderRepo.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*models.Order"), mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Order)
		}).Return(nil)
	m.orderRepo.On("GetByCode", mock.Anything, mock.AnythingOfType("string")).
		Return(&models.Order{}, nil)

	_, err := svc.CreateOrder(context.Background(), "cart-1", codPayload())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, decimal.NewFromInt(108000).Equal(created.Subtotal))
	assert.True(t, decimal.NewFromInt(108000).Equal(created.GrandTotal))
	assert.Equal(t, "cod", created.PaymentMethod)
	assert.Equal(t, "unpaid", created.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	require.NotNil(t, created.Customer)
	assert.Equal(t, "Lahore", created.Customer.City)
	assert.Regexp(t, `^VH-\d{8}-[0-9A-F]{8}$`, created.OrderCode)
	require.Len(t, created.OrderItems, 1)
	assert.Equal(t, 2, created.OrderItems[0].Quantity)
}

func TestGetOrderNotFound(t *testing.T) {
	svc, m := newCheckoutServiceWithMocks()
	m.orderRepo.On("GetByCode", mock.Anything, "VH-NOPE").Return(nil, assert.AnError)

	_, err := svc.GetOrder(context.Background(), "VH-NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestBuildOrderItemsRemapsParentLinks(t *testing.T) {
	bundleID := "bundle-1"
	productID := "p-1"
	parentID := "cart-parent"

	cartItems := []models.CartItem{
		{
			ID:          parentID,
			BundleID:    &bundleID,
			DisplayMode: models.CartDisplayIndividual,
			Quantity:    1,
		},
		{
			ID:               "cart-child",
			ProductID:        &productID,
			BundleID:         &bundleID,
			IsBundleItem:     true,
			ParentCartItemID: &parentID,
			Quantity:         1,
		},
	}

	orderItems := buildOrderItems(cartItems)

	require.Len(t, orderItems, 2)
	parent, child := orderItems[0], orderItems[1]

	assert.NotEqual(t, parentID, parent.ID)
	require.NotNil(t, child.ParentOrderItemID)
	assert.Equal(t, parent.ID, *child.ParentOrderItemID)
	assert.True(t, child.IsBundleItem)
}
