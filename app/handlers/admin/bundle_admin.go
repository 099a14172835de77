package admin

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
	"gorm.io/gorm"
)

type BundleAdminHandler struct {
	bundleRepo  repositories.BundleRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	validate    *validator.Validate
	render      *render.Render
}

func NewBundleAdminHandler(
	bundleRepo repositories.BundleRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	validate *validator.Validate,
	rnd *render.Render,
) *BundleAdminHandler {
	return &BundleAdminHandler{
		bundleRepo:  bundleRepo,
		productRepo: productRepo,
		validate:    validate,
		render:      rnd,
	}
}

type bundleItemPayload struct {
	ProductID      string          `json:"product_id" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required,min=1"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

type bundleSlotProductPayload struct {
	ProductID      string          `json:"product_id" validate:"required"`
	Position       int             `json:"position"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

type bundleSlotPayload struct {
	Name           string                     `json:"name" validate:"required"`
	Description    string                     `json:"description"`
	Position       int                        `json:"position"`
	IsRequired     bool                       `json:"is_required"`
	AllowsMultiple bool                       `json:"allows_multiple"`
	MinSelections  int                        `json:"min_selections" validate:"min=0"`
	MaxSelections  int                        `json:"max_selections" validate:"min=1"`
	Products       []bundleSlotProductPayload `json:"products" validate:"required,dive"`
}

type bundlePayload struct {
	Slug           string              `json:"slug" validate:"required"`
	Name           string              `json:"name" validate:"required"`
	Description    string              `json:"description"`
	BundleType     string              `json:"bundle_type" validate:"required,oneof=fixed configurable"`
	DiscountType   string              `json:"discount_type" validate:"required,oneof=fixed_price percentage"`
	DiscountValue  decimal.Decimal     `json:"discount_value"`
	CartDisplay    string              `json:"cart_display" validate:"required,oneof=single_item grouped individual"`
	IsAvailable    bool                `json:"is_available"`
	StockRemaining *int                `json:"stock_remaining"`
	ShowSavings    bool                `json:"show_savings"`
	ShowCountdown  bool                `json:"show_countdown"`
	EndsAt         *time.Time          `json:"ends_at"`
	CtaText        string              `json:"cta_text"`
	BadgeText      string              `json:"badge_text"`
	BadgeColor     string              `json:"badge_color"`
	Items          []bundleItemPayload `json:"items" validate:"dive"`
	Slots          []bundleSlotPayload `json:"slots" validate:"dive"`
}

func (h *BundleAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.bundleRepo.GetAll(r.Context(), false)
	if err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to list bundles")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"bundles": bundles})
}

func (h *BundleAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBundle(w, r)
	if !ok {
		return
	}

	bundle, err := h.buildBundle(r, &models.Bundle{}, payload)
	if err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.bundleRepo.Create(r.Context(), bundle); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to create bundle")
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"bundle": bundle})
}

func (h *BundleAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.bundleRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSONError(h.render, w, http.StatusNotFound, "bundle not found")
			return
		}
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to fetch bundle")
		return
	}

	payload, ok := h.decodeBundle(w, r)
	if !ok {
		return
	}

	bundle, err := h.buildBundle(r, existing, payload)
	if err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.bundleRepo.Update(r.Context(), bundle); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to update bundle")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"bundle": bundle})
}

func (h *BundleAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.bundleRepo.Delete(r.Context(), id); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to delete bundle")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *BundleAdminHandler) decodeBundle(w http.ResponseWriter, r *http.Request) (*bundlePayload, bool) {
	var payload bundlePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(h.render, w, http.StatusBadRequest, "invalid JSON payload")
		return nil, false
	}
	if err := h.validate.Struct(&payload); err != nil {
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return &payload, true
}

// buildBundle maps the payload onto a bundle, enforcing the authoring
// invariants the storefront relies on: fixed bundles carry items,
// configurable bundles carry slots, and every slot satisfies
// min_selections <= max_selections.
func (h *BundleAdminHandler) buildBundle(r *http.Request, bundle *models.Bundle, payload *bundlePayload) (*models.Bundle, error) {
	switch models.BundleType(payload.BundleType) {
	case models.BundleTypeFixed:
		if len(payload.Items) == 0 {
			return nil, errors.New("a fixed bundle needs at least one item")
		}
	case models.BundleTypeConfigurable:
		if len(payload.Slots) == 0 {
			return nil, errors.New("a configurable bundle needs at least one slot")
		}
	}

	bundle.Slug = payload.Slug
	bundle.Name = payload.Name
	bundle.Description = payload.Description
	bundle.BundleType = models.BundleType(payload.BundleType)
	bundle.DiscountType = models.DiscountType(payload.DiscountType)
	bundle.DiscountValue = payload.DiscountValue
	bundle.CartDisplay = models.CartDisplay(payload.CartDisplay)
	bundle.IsAvailable = payload.IsAvailable
	bundle.StockRemaining = payload.StockRemaining
	bundle.ShowSavings = payload.ShowSavings
	bundle.ShowCountdown = payload.ShowCountdown
	bundle.EndsAt = payload.EndsAt
	bundle.CtaText = payload.CtaText
	bundle.BadgeText = payload.BadgeText
	bundle.BadgeColor = payload.BadgeColor

	bundle.Items = nil
	for _, item := range payload.Items {
		price, err := h.resolvePrice(r, item.ProductID, item.EffectivePrice)
		if err != nil {
			return nil, err
		}
		bundle.Items = append(bundle.Items, models.BundleItem{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			EffectivePrice: price,
		})
	}

	bundle.Slots = nil
	for _, slot := range payload.Slots {
		if slot.MinSelections > slot.MaxSelections {
			return nil, fmt.Errorf("slot %q: min_selections must not exceed max_selections", slot.Name)
		}
		built := models.BundleSlot{
			Name:           slot.Name,
			Description:    slot.Description,
			Position:       slot.Position,
			IsRequired:     slot.IsRequired,
			AllowsMultiple: slot.AllowsMultiple,
			MinSelections:  slot.MinSelections,
			MaxSelections:  slot.MaxSelections,
		}
		for _, sp := range slot.Products {
			price, err := h.resolvePrice(r, sp.ProductID, sp.EffectivePrice)
			if err != nil {
				return nil, err
			}
			built.Products = append(built.Products, models.BundleSlotProduct{
				ProductID:      sp.ProductID,
				Position:       sp.Position,
				EffectivePrice: price,
			})
		}
		bundle.Slots = append(bundle.Slots, built)
	}

	return bundle, nil
}

// resolvePrice falls back to the product's own effective price when the
// payload does not pin one explicitly.
func (h *BundleAdminHandler) resolvePrice(r *http.Request, productID string, price decimal.Decimal) (decimal.Decimal, error) {
	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		return decimal.Zero, errors.New("unknown product: " + productID)
	}
	if price.IsPositive() {
		return price, nil
	}
	return product.EffectivePrice(), nil
}
