package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/services"
	"github.com/volthome/storefront/app/utils/format"
	"github.com/volthome/storefront/app/utils/sessions"
)

type CartHandler struct {
	cartSvc *services.CartService
	render  *render.Render
}

func NewCartHandler(cartSvc *services.CartService, rnd *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, render: rnd}
}

type addProductRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type addBundleRequest struct {
	BundleSlug string              `json:"bundle_slug"`
	Quantity   int                 `json:"quantity"`
	Selections map[string][]string `json:"selections"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code"`
}

func cartResponse(cart *models.Cart) map[string]interface{} {
	return map[string]interface{}{
		"cart": cart,
		"formatted": map[string]string{
			"subtotal":        format.Rupees(cart.Subtotal),
			"bundle_savings":  format.Rupees(cart.BundleSavings),
			"coupon_discount": format.Rupees(cart.CouponDiscount),
			"grand_total":     format.Rupees(cart.GrandTotal),
		},
	}
}

func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) (string, bool) {
	cartID, err := sessions.GetCartID(w, r)
	if err != nil {
		writeError(h.render, w, http.StatusInternalServerError, "failed to resolve cart session", nil)
		return "", false
	}
	return cartID, true
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	cart, err := h.cartSvc.GetCart(r.Context(), cartID)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req addProductRequest
	if err := decodeJSON(r, &req); err != nil || req.ProductID == "" {
		writeError(h.render, w, http.StatusBadRequest, "product_id is required", nil)
		return
	}

	cart, err := h.cartSvc.AddProduct(r.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) AddBundle(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req addBundleRequest
	if err := decodeJSON(r, &req); err != nil || req.BundleSlug == "" {
		writeError(h.render, w, http.StatusBadRequest, "bundle_slug is required", nil)
		return
	}

	cart, err := h.cartSvc.AddBundle(r.Context(), cartID, req.BundleSlug, req.Selections, req.Quantity)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, cartResponse(cart))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}
	itemID := mux.Vars(r)["id"]

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.render, w, http.StatusBadRequest, "invalid JSON payload", nil)
		return
	}

	cart, err := h.cartSvc.UpdateItemQuantity(r.Context(), cartID, itemID, req.Quantity)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}
	itemID := mux.Vars(r)["id"]

	cart, err := h.cartSvc.RemoveItem(r.Context(), cartID, itemID)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	if err := h.cartSvc.Clear(r.Context(), cartID); err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	var req couponRequest
	if err := decodeJSON(r, &req); err != nil || req.Code == "" {
		writeError(h.render, w, http.StatusBadRequest, "code is required", nil)
		return
	}

	cart, err := h.cartSvc.ApplyCoupon(r.Context(), cartID, req.Code)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cartResponse(cart))
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	cartID, ok := h.cartID(w, r)
	if !ok {
		return
	}

	cart, err := h.cartSvc.RemoveCoupon(r.Context(), cartID)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cartResponse(cart))
}
