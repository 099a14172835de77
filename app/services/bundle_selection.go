package services

import (
	"fmt"

	"github.com/volthome/storefront/app/models"
)

// SlotSelections maps a slot ID to the product IDs currently picked into
// it. Product IDs are unique per slot; all mutation goes through Pick so
// the per-slot rules hold by construction.
type SlotSelections map[string][]string

func NewSlotSelections() SlotSelections {
	return make(SlotSelections)
}

// Selected reports whether productID is currently picked into slotID.
func (s SlotSelections) Selected(slotID, productID string) bool {
	for _, id := range s[slotID] {
		if id == productID {
			return true
		}
	}
	return false
}

// Count returns the number of products picked into slotID.
func (s SlotSelections) Count(slotID string) int {
	return len(s[slotID])
}

// Pick applies storefront click semantics for one slot:
//
//   - single-select slots replace the previous pick;
//   - multi-select slots toggle membership, and a pick that would exceed
//     the slot's cap is a no-op.
//
// Products the slot does not offer are ignored.
func (s SlotSelections) Pick(slot *models.BundleSlot, productID string) {
	if slot == nil || !slot.HasProduct(productID) {
		return
	}

	if !slot.AllowsMultiple {
		s[slot.ID] = []string{productID}
		return
	}

	current := s[slot.ID]
	for i, id := range current {
		if id == productID {
			s[slot.ID] = append(current[:i], current[i+1:]...)
			return
		}
	}

	if len(current) >= slot.SelectionCap() {
		return
	}
	s[slot.ID] = append(current, productID)
}

// SelectionStatus is the advisory completeness result that drives the
// storefront's add-to-cart enablement.
type SelectionStatus struct {
	IsComplete           bool     `json:"is_complete"`
	MissingRequiredSlots []string `json:"missing_required_slots"`
}

// ValidateSelections checks every required slot of a configurable bundle
// against its minimum selection count. Optional slots never block
// completeness. Fixed bundles are always complete.
func ValidateSelections(bundle *models.Bundle, sel SlotSelections) SelectionStatus {
	status := SelectionStatus{IsComplete: true, MissingRequiredSlots: []string{}}
	if bundle.BundleType != models.BundleTypeConfigurable {
		return status
	}

	for i := range bundle.Slots {
		slot := &bundle.Slots[i]
		if !slot.IsRequired {
			continue
		}
		if sel.Count(slot.ID) < slot.MinSelections {
			status.IsComplete = false
			status.MissingRequiredSlots = append(status.MissingRequiredSlots, slot.ID)
		}
	}
	return status
}

// SanitizeSelections rebuilds a raw request payload as a SlotSelections,
// silently dropping unknown slots, unknown products, and duplicates. Used
// on the price-preview path, where a stale payload should still price
// rather than fail.
func SanitizeSelections(bundle *models.Bundle, raw map[string][]string) SlotSelections {
	sel := NewSlotSelections()
	for slotID, productIDs := range raw {
		slot := bundle.Slot(slotID)
		if slot == nil {
			continue
		}
		for _, productID := range productIDs {
			sel.Pick(slot, productID)
		}
	}
	return sel
}

// NormalizeSelections rebuilds a raw request payload for a cart mutation.
// Unlike SanitizeSelections it rejects unknown slots, unknown products,
// and over-cap selections, since a mutation with a malformed payload must
// not write anything.
func NormalizeSelections(bundle *models.Bundle, raw map[string][]string) (SlotSelections, error) {
	sel := NewSlotSelections()
	for slotID, productIDs := range raw {
		slot := bundle.Slot(slotID)
		if slot == nil {
			return nil, &InvalidSelectionError{SlotID: slotID, Reason: "slot does not belong to this bundle"}
		}

		seen := make(map[string]bool, len(productIDs))
		for _, productID := range productIDs {
			if seen[productID] {
				continue
			}
			seen[productID] = true

			if !slot.HasProduct(productID) {
				return nil, &InvalidSelectionError{
					SlotID: slotID,
					Reason: fmt.Sprintf("product %s is not offered by this slot", productID),
				}
			}
			if len(sel[slotID]) >= slot.SelectionCap() {
				return nil, &InvalidSelectionError{
					SlotID: slotID,
					Reason: fmt.Sprintf("at most %d selection(s) allowed", slot.SelectionCap()),
				}
			}
			sel[slotID] = append(sel[slotID], productID)
		}
	}
	return sel, nil
}
