package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	bundleRepo   repositories.BundleRepositoryImpl
	couponRepo   repositories.CouponRepositoryImpl
}

func NewCartService(
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	couponRepo repositories.CouponRepositoryImpl,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		bundleRepo:   bundleRepo,
		couponRepo:   couponRepo,
	}
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	if _, err := s.refreshSummary(ctx, cartID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCartWithItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	return cart, nil
}

// AddProduct puts a plain (non-bundle) product row into the cart, merging
// with an existing row for the same product.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string, qty int) (*models.Cart, error) {
	if qty < 1 {
		qty = 1
	}

	if _, err := s.cartRepo.GetOrCreate(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	existing, err := s.cartItemRepo.GetByCartAndProduct(ctx, cartID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	newQty := qty
	if existing != nil {
		newQty += existing.Quantity
	}
	if product.Stock < newQty {
		return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Stock)
	}

	unit := product.EffectivePrice()
	if existing != nil {
		existing.Quantity = newQty
		existing.UnitPrice = unit
		existing.TotalPrice = unit.Mul(decimal.NewFromInt(int64(newQty)))
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		item := models.CartItem{
			CartID:      cartID,
			ProductID:   &productID,
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  unit.Mul(decimal.NewFromInt(int64(qty))),
			IsAvailable: true,
		}
		if err := s.cartItemRepo.Add(ctx, &item); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	return s.GetCart(ctx, cartID)
}

// AddBundle validates, prices, and composes a bundle-add into cart rows.
// The price is locked in at this moment; later catalog changes do not
// touch rows already in the cart. Nothing is written when validation or
// availability checks fail.
func (s *CartService) AddBundle(ctx context.Context, cartID, bundleSlug string, rawSelections map[string][]string, qty int) (*models.Cart, error) {
	if qty < 1 {
		qty = 1
	}

	bundle, err := s.bundleRepo.GetBySlug(ctx, bundleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, fmt.Errorf("failed to fetch bundle: %w", err)
	}

	if !bundle.IsAvailable || bundle.Expired(time.Now()) {
		return nil, ErrBundleUnavailable
	}
	if bundle.StockRemaining != nil && *bundle.StockRemaining < qty {
		return nil, ErrBundleOutOfStock
	}

	sel := NewSlotSelections()
	if bundle.BundleType == models.BundleTypeConfigurable {
		sel, err = NormalizeSelections(bundle, rawSelections)
		if err != nil {
			return nil, err
		}
		if status := ValidateSelections(bundle, sel); !status.IsComplete {
			return nil, &IncompleteSelectionError{MissingSlots: missingSlotNames(bundle, status)}
		}
	}

	if _, err := s.cartRepo.GetOrCreate(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	breakdown := CalculateBundlePrice(bundle, sel)
	items := ComposeBundleCartItems(cartID, bundle, sel, breakdown, qty)

	if err := s.cartItemRepo.AddBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to add bundle to cart: %w", err)
	}

	return s.GetCart(ctx, cartID)
}

// UpdateItemQuantity rescales a plain row or a bundle parent row. Child
// rows of an individual-display bundle are rejected; they can only change
// through their parent, which keeps the bundle's sum invariant intact.
func (s *CartService) UpdateItemQuantity(ctx context.Context, cartID, itemID string, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, cartID, itemID)
	}

	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil || item.CartID != cartID {
		return nil, ErrCartItemNotFound
	}
	if item.IsBundleItem {
		return nil, ErrBundleChildRow
	}

	if item.BundleID == nil {
		product, err := s.productRepo.GetByID(ctx, *item.ProductID)
		if err == nil && product.Stock < qty {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Stock)
		}
	} else {
		bundle, err := s.bundleRepo.GetByID(ctx, *item.BundleID)
		if err == nil && bundle.StockRemaining != nil && *bundle.StockRemaining < qty {
			return nil, ErrBundleOutOfStock
		}
	}

	updates, err := scaleItemQuantity(ctx, s.cartItemRepo, item, qty)
	if err != nil {
		return nil, err
	}
	if err := s.cartItemRepo.UpdateBatch(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return s.GetCart(ctx, cartID)
}

// scaleItemQuantity rescales a row (and, for an individual-display bundle
// parent, its children) to the new quantity. All per-unit amounts are
// derived from the locked-in prices, never refetched from the catalog.
func scaleItemQuantity(ctx context.Context, repo repositories.CartItemRepositoryImpl, item *models.CartItem, qty int) ([]models.CartItem, error) {
	oldQty := decimal.NewFromInt(int64(item.Quantity))
	newQty := decimal.NewFromInt(int64(qty))

	scale := func(v decimal.Decimal) decimal.Decimal {
		if oldQty.IsZero() {
			return v
		}
		return v.Div(oldQty).Mul(newQty)
	}

	item.TotalPrice = scale(item.TotalPrice)
	item.BundleDiscount = scale(item.BundleDiscount)
	updates := []models.CartItem{}

	if item.BundleID != nil && item.DisplayMode == models.CartDisplayIndividual {
		children, err := repo.GetChildren(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bundle rows: %w", err)
		}
		for i := range children {
			child := &children[i]
			perUnit := child.Quantity / item.Quantity
			child.Quantity = perUnit * qty
			child.TotalPrice = scale(child.TotalPrice)
			child.BundleDiscount = scale(child.BundleDiscount)
			updates = append(updates, *child)
		}
	}

	item.Quantity = qty
	updates = append(updates, *item)
	return updates, nil
}

// RemoveItem deletes a row; removing a bundle parent cascades to every row
// linked through parent_cart_item_id.
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) (*models.Cart, error) {
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil || item.CartID != cartID {
		return nil, ErrCartItemNotFound
	}
	if item.IsBundleItem {
		return nil, ErrBundleChildRow
	}

	if err := s.cartItemRepo.DeleteWithChildren(ctx, cartID, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.GetCart(ctx, cartID)
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	if err := s.cartItemRepo.ClearCart(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.cartRepo.DeleteCart(ctx, cartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func (s *CartService) ApplyCoupon(ctx context.Context, cartID, code string) (*models.Cart, error) {
	cart, err := s.refreshSummary(ctx, cartID)
	if err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponInvalid
		}
		return nil, fmt.Errorf("failed to fetch coupon: %w", err)
	}

	now := time.Now()
	if !coupon.IsActive || (coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt)) {
		return nil, ErrCouponInvalid
	}
	if cart.Subtotal.LessThan(coupon.MinSubtotal) {
		return nil, ErrCouponMinSubtotal
	}

	cart.CouponCode = coupon.Code
	cart.CouponDiscount = coupon.DiscountFor(cart.Subtotal)
	cart.GrandTotal = cart.Subtotal.Sub(cart.CouponDiscount)
	if err := s.cartRepo.SaveSummary(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to apply coupon: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cartID)
}

func (s *CartService) RemoveCoupon(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart.CouponCode == "" {
		return nil, ErrNoCouponApplied
	}

	cart.CouponCode = ""
	cart.CouponDiscount = decimal.Zero
	cart.GrandTotal = cart.Subtotal
	if err := s.cartRepo.SaveSummary(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to remove coupon: %w", err)
	}

	return s.GetCart(ctx, cartID)
}

// refreshSummary recomputes the cart's aggregate columns from its rows.
// The applied coupon is re-evaluated against the new subtotal and dropped
// when it no longer qualifies.
func (s *CartService) refreshSummary(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	items, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	subtotal := decimal.Zero
	savings := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].TotalPrice)
		if !items[i].IsBundleItem {
			savings = savings.Add(items[i].BundleDiscount)
		}
	}

	cart.Subtotal = subtotal
	cart.BundleSavings = savings
	cart.CouponDiscount = decimal.Zero

	if cart.CouponCode != "" {
		coupon, err := s.couponRepo.GetByCode(ctx, cart.CouponCode)
		if err == nil && coupon.Usable(subtotal, time.Now()) {
			cart.CouponDiscount = coupon.DiscountFor(subtotal)
		} else {
			logrus.WithField("cart_id", cartID).WithField("coupon", cart.CouponCode).
				Info("dropping coupon that no longer qualifies")
			cart.CouponCode = ""
		}
	}

	cart.GrandTotal = subtotal.Sub(cart.CouponDiscount)
	if err := s.cartRepo.SaveSummary(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart summary: %w", err)
	}
	return cart, nil
}

func missingSlotNames(bundle *models.Bundle, status SelectionStatus) []string {
	names := make([]string, 0, len(status.MissingRequiredSlots))
	for _, slotID := range status.MissingRequiredSlots {
		if slot := bundle.Slot(slotID); slot != nil {
			names = append(names, slot.Name)
		} else {
			names = append(names, slotID)
		}
	}
	return names
}
