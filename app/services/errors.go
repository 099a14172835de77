package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBundleNotFound         = errors.New("bundle not found")
	ErrBundleUnavailable      = errors.New("bundle is not available")
	ErrBundleOutOfStock       = errors.New("bundle is out of stock")
	ErrProductNotFound        = errors.New("product not found")
	ErrInsufficientStock      = errors.New("insufficient product stock")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrBundleChildRow         = errors.New("bundle contents can only be changed through their parent row")
	ErrCouponInvalid          = errors.New("coupon is invalid or expired")
	ErrCouponMinSubtotal      = errors.New("cart subtotal is below the coupon minimum")
	ErrNoCouponApplied        = errors.New("no coupon applied to this cart")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrOrderNotFound          = errors.New("order not found")
	ErrDealerEmailTaken       = errors.New("a dealer application already exists for this email")
	ErrServiceRequestNotFound = errors.New("service request not found")
)

// IncompleteSelectionError reports which required slots still need picks
// before a configurable bundle can be added to the cart.
type IncompleteSelectionError struct {
	MissingSlots []string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("required slots not satisfied: %s", strings.Join(e.MissingSlots, ", "))
}

// InvalidSelectionError reports a selection payload that references
// something the bundle does not offer, or overfills a slot.
type InvalidSelectionError struct {
	SlotID string
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	if e.SlotID == "" {
		return fmt.Sprintf("invalid selection: %s", e.Reason)
	}
	return fmt.Sprintf("invalid selection for slot %s: %s", e.SlotID, e.Reason)
}
