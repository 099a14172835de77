package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/services"
	"github.com/volthome/storefront/app/utils/format"
)

type BundleHandler struct {
	bundleSvc *services.BundleService
	render    *render.Render
}

func NewBundleHandler(bundleSvc *services.BundleService, rnd *render.Render) *BundleHandler {
	return &BundleHandler{bundleSvc: bundleSvc, render: rnd}
}

type priceRequest struct {
	Selections map[string][]string `json:"selections"`
}

type breakdownResponse struct {
	services.PricingBreakdown
	// SavingsPercentage in the embedded breakdown keeps full precision;
	// these fields are for display.
	SavingsPercentDisplay    string `json:"savings_percent_display"`
	FormattedOriginalPrice   string `json:"formatted_original_price"`
	FormattedDiscountedPrice string `json:"formatted_discounted_price"`
	FormattedSavings         string `json:"formatted_savings"`
}

func newBreakdownResponse(b services.PricingBreakdown) breakdownResponse {
	return breakdownResponse{
		PricingBreakdown:         b,
		SavingsPercentDisplay:    b.SavingsPercentage.Round(0).String() + "%",
		FormattedOriginalPrice:   format.Rupees(b.OriginalPrice),
		FormattedDiscountedPrice: format.Rupees(b.DiscountedPrice),
		FormattedSavings:         format.Rupees(b.Savings),
	}
}

func (h *BundleHandler) List(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.bundleSvc.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"bundles": bundles})
}

func (h *BundleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	bundle, err := h.bundleSvc.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	// Fixed bundles ship with their full breakdown; configurable bundles
	// start from an empty selection and re-price client-side via Price.
	breakdown := services.CalculateBundlePrice(bundle, services.NewSlotSelections())

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"bundle":  bundle,
		"pricing": newBreakdownResponse(breakdown),
	})
}

// Price is the server-side recalculation endpoint: the storefront posts
// its current selections and gets the authoritative breakdown back.
func (h *BundleHandler) Price(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req priceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.render, w, http.StatusBadRequest, "invalid JSON payload", nil)
		return
	}

	breakdown, status, err := h.bundleSvc.Quote(r.Context(), slug, req.Selections)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"pricing":   newBreakdownResponse(breakdown),
		"selection": status,
	})
}
