package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volthome/storefront/app/models"
	"gorm.io/datatypes"
)

// bundleLine is one constituent of a bundle-add, resolved to a product
// with an original (pre-discount) price. For fixed bundles these come from
// the item list; for configurable bundles, from the current selections.
type bundleLine struct {
	productID    string
	productName  string
	productImage string
	slotID       string
	slotName     string
	quantity     int
	unitPrice    decimal.Decimal
}

func (l bundleLine) lineTotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// ComposeBundleCartItems expands one bundle-add into cart rows according
// to the bundle's cart display mode. Row IDs are assigned here so child
// rows can reference their parent before anything is persisted.
//
// Invariant, all modes: the total_price of the produced rows sums to
// breakdown.DiscountedPrice multiplied by qty.
func ComposeBundleCartItems(cartID string, bundle *models.Bundle, sel SlotSelections, breakdown PricingBreakdown, qty int) []models.CartItem {
	lines := resolveBundleLines(bundle, sel)
	snapshots := buildSelectionSnapshots(bundle, lines)
	bundleQty := decimal.NewFromInt(int64(qty))

	parent := models.CartItem{
		ID:                   uuid.New().String(),
		CartID:               cartID,
		BundleID:             &bundle.ID,
		DisplayMode:          bundle.CartDisplay,
		BundleSlotSelections: datatypes.NewJSONSlice(snapshots),
		Quantity:             qty,
		IsAvailable:          true,
	}

	if bundle.CartDisplay != models.CartDisplayIndividual {
		// single_item and grouped are one row in the cart; grouped only
		// differs in how the frontend renders the selection snapshot.
		parent.UnitPrice = breakdown.DiscountedPrice
		parent.TotalPrice = breakdown.DiscountedPrice.Mul(bundleQty)
		parent.BundleDiscount = breakdown.Savings.Mul(bundleQty)
		return []models.CartItem{parent}
	}

	// individual: the parent row is a zero-priced anchor recording the
	// discount; each constituent becomes its own child row and the
	// discounted total is allocated across them.
	parent.UnitPrice = decimal.Zero
	parent.TotalPrice = decimal.Zero
	parent.BundleDiscount = breakdown.Savings.Mul(bundleQty)

	items := []models.CartItem{parent}
	totals := allocateDiscountedTotal(lines, breakdown.DiscountedPrice.Mul(bundleQty))

	for i, line := range lines {
		childQty := line.quantity * qty
		childTotal := totals[i]
		childOriginal := line.unitPrice.Mul(decimal.NewFromInt(int64(childQty)))

		productID := line.productID
		child := models.CartItem{
			ID:               uuid.New().String(),
			CartID:           cartID,
			ProductID:        &productID,
			BundleID:         &bundle.ID,
			IsBundleItem:     true,
			ParentCartItemID: &parent.ID,
			DisplayMode:      bundle.CartDisplay,
			Quantity:         childQty,
			UnitPrice:        line.unitPrice,
			TotalPrice:       childTotal,
			BundleDiscount:   childOriginal.Sub(childTotal),
			IsAvailable:      true,
		}
		items = append(items, child)
	}

	return items
}

// allocateDiscountedTotal splits total across the lines proportionally to
// their original value, rounded to 2 decimal places, with the rounding
// remainder folded into the last line so the parts always sum exactly.
func allocateDiscountedTotal(lines []bundleLine, total decimal.Decimal) []decimal.Decimal {
	totals := make([]decimal.Decimal, len(lines))
	if len(lines) == 0 {
		return totals
	}

	originalSum := decimal.Zero
	for _, line := range lines {
		originalSum = originalSum.Add(line.lineTotal())
	}

	if originalSum.IsZero() {
		totals[len(totals)-1] = total
		return totals
	}

	allocated := decimal.Zero
	for i, line := range lines {
		if i == len(lines)-1 {
			totals[i] = total.Sub(allocated)
			break
		}
		share := total.Mul(line.lineTotal()).Div(originalSum).Round(2)
		totals[i] = share
		allocated = allocated.Add(share)
	}
	return totals
}

func resolveBundleLines(bundle *models.Bundle, sel SlotSelections) []bundleLine {
	var lines []bundleLine

	if bundle.BundleType == models.BundleTypeConfigurable {
		for i := range bundle.Slots {
			slot := &bundle.Slots[i]
			for _, productID := range sel[slot.ID] {
				sp := slot.SlotProduct(productID)
				if sp == nil {
					continue
				}
				line := bundleLine{
					productID: productID,
					slotID:    slot.ID,
					slotName:  slot.Name,
					quantity:  1,
					unitPrice: sp.EffectivePrice,
				}
				if sp.Product != nil {
					line.productName = sp.Product.Name
					if len(sp.Product.Images) > 0 {
						line.productImage = sp.Product.Images[0].URL
					}
				}
				lines = append(lines, line)
			}
		}
		return lines
	}

	for i := range bundle.Items {
		item := &bundle.Items[i]
		line := bundleLine{
			productID: item.ProductID,
			quantity:  item.Quantity,
			unitPrice: item.EffectivePrice,
		}
		if item.Product != nil {
			line.productName = item.Product.Name
			if len(item.Product.Images) > 0 {
				line.productImage = item.Product.Images[0].URL
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func buildSelectionSnapshots(bundle *models.Bundle, lines []bundleLine) []models.SlotSelectionSnapshot {
	snapshots := make([]models.SlotSelectionSnapshot, 0, len(lines))
	for _, line := range lines {
		snapshots = append(snapshots, models.SlotSelectionSnapshot{
			SlotID:       line.slotID,
			SlotName:     line.slotName,
			ProductID:    line.productID,
			ProductName:  line.productName,
			ProductImage: line.productImage,
		})
	}
	return snapshots
}
