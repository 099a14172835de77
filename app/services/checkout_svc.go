package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type CheckoutPayload struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address1      string `json:"address1" validate:"required"`
	Address2      string `json:"address2"`
	City          string `json:"city" validate:"required"`
	PostCode      string `json:"post_code"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=gateway cod"`
}

type CheckoutService struct {
	cartSvc      *CartService
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	bundleRepo   repositories.BundleRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	paymentSvc   *PaymentService
}

func NewCheckoutService(
	cartSvc *CartService,
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	paymentSvc *PaymentService,
) *CheckoutService {
	return &CheckoutService{
		cartSvc:      cartSvc,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		bundleRepo:   bundleRepo,
		orderRepo:    orderRepo,
		paymentSvc:   paymentSvc,
	}
}

// CreateOrder turns the cart into an order: cart rows become order items
// with their locked-in prices, stock is decremented, and the cart is
// cleared, all in one transaction. Payment initiation happens after the
// order committed and is allowed to fail without losing the order.
func (s *CheckoutService) CreateOrder(ctx context.Context, cartID string, payload CheckoutPayload) (*models.Order, error) {
	cart, err := s.cartSvc.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.checkAvailability(ctx, cart.CartItems); err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderCode:      newOrderCode(),
		OrderDate:      time.Now(),
		CartID:         cartID,
		Subtotal:       cart.Subtotal,
		BundleSavings:  cart.BundleSavings,
		CouponCode:     cart.CouponCode,
		CouponDiscount: cart.CouponDiscount,
		GrandTotal:     cart.GrandTotal,
		PaymentMethod:  payload.PaymentMethod,
		PaymentStatus:  "unpaid",
		Status:         models.OrderStatusPending,
		OrderItems:     buildOrderItems(cart.CartItems),
		Customer: &models.OrderCustomer{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.Email,
			Phone:     payload.Phone,
			Address1:  payload.Address1,
			Address2:  payload.Address2,
			City:      payload.City,
			PostCode:  payload.PostCode,
		},
	}

	err = s.orderRepo.CreateWithItems(ctx, order, func(tx *gorm.DB) error {
		if err := s.decrementStock(ctx, tx, cart.CartItems); err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", cartID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if payload.PaymentMethod == "gateway" {
		s.initiatePayment(ctx, order)
	}

	return s.orderRepo.GetByCode(ctx, order.OrderCode)
}

func (s *CheckoutService) GetOrder(ctx context.Context, code string) (*models.Order, error) {
	order, err := s.orderRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *CheckoutService) checkAvailability(ctx context.Context, items []models.CartItem) error {
	for i := range items {
		item := &items[i]
		switch {
		case item.BundleID != nil && !item.IsBundleItem:
			bundle, err := s.bundleRepo.GetByID(ctx, *item.BundleID)
			if err != nil {
				return ErrBundleUnavailable
			}
			if !bundle.IsAvailable {
				return ErrBundleUnavailable
			}
			if bundle.StockRemaining != nil && *bundle.StockRemaining < item.Quantity {
				return ErrBundleOutOfStock
			}
		case item.BundleID == nil && item.ProductID != nil:
			product, err := s.productRepo.GetByID(ctx, *item.ProductID)
			if err != nil {
				return ErrProductNotFound
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Stock)
			}
		}
	}
	return nil
}

func (s *CheckoutService) decrementStock(ctx context.Context, tx *gorm.DB, items []models.CartItem) error {
	for i := range items {
		item := &items[i]
		switch {
		case item.BundleID != nil && !item.IsBundleItem:
			if err := s.bundleRepo.DecrementStock(ctx, tx, *item.BundleID, item.Quantity); err != nil {
				return err
			}
		case item.BundleID == nil && item.ProductID != nil:
			if err := s.productRepo.DecrementStock(ctx, tx, *item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildOrderItems copies cart rows into order items, rebuilding the
// parent/child linkage under the new IDs.
func buildOrderItems(cartItems []models.CartItem) []models.OrderItem {
	idMap := make(map[string]string, len(cartItems))
	for i := range cartItems {
		idMap[cartItems[i].ID] = uuid.New().String()
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for i := range cartItems {
		ci := &cartItems[i]
		oi := models.OrderItem{
			ID:                   idMap[ci.ID],
			ProductID:            ci.ProductID,
			BundleID:             ci.BundleID,
			IsBundleItem:         ci.IsBundleItem,
			DisplayMode:          ci.DisplayMode,
			BundleSlotSelections: ci.BundleSlotSelections,
			Quantity:             ci.Quantity,
			UnitPrice:            ci.UnitPrice,
			TotalPrice:           ci.TotalPrice,
			BundleDiscount:       ci.BundleDiscount,
		}
		if ci.ParentCartItemID != nil {
			if mapped, ok := idMap[*ci.ParentCartItemID]; ok {
				oi.ParentOrderItemID = &mapped
			}
		}
		switch {
		case ci.Product != nil:
			oi.ProductName = ci.Product.Name
			oi.ProductSku = ci.Product.Sku
		case ci.Bundle != nil:
			oi.ProductName = ci.Bundle.Name
		}
		orderItems = append(orderItems, oi)
	}
	return orderItems
}

func (s *CheckoutService) initiatePayment(ctx context.Context, order *models.Order) {
	resp, err := s.paymentSvc.CreateSnapTransaction(order)
	if err != nil {
		logrus.WithError(err).WithField("order_code", order.OrderCode).
			Error("payment initiation failed, order kept as unpaid")
		return
	}

	if err := s.orderRepo.UpdatePayment(ctx, order.ID, resp.Token, resp.RedirectURL, "pending"); err != nil {
		logrus.WithError(err).WithField("order_code", order.OrderCode).
			Error("failed to record payment transaction")
	}
}

func newOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("VH-%s-%s", time.Now().Format("20060102"), suffix)
}
