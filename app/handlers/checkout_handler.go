package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/services"
	"github.com/volthome/storefront/app/utils/sessions"
)

type CheckoutHandler struct {
	checkoutSvc *services.CheckoutService
	validate    *validator.Validate
	render      *render.Render
}

func NewCheckoutHandler(checkoutSvc *services.CheckoutService, validate *validator.Validate, rnd *render.Render) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc, validate: validate, render: rnd}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID, err := sessions.GetCartID(w, r)
	if err != nil {
		writeError(h.render, w, http.StatusInternalServerError, "failed to resolve cart session", nil)
		return
	}

	var payload services.CheckoutPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(h.render, w, http.StatusBadRequest, "invalid JSON payload", nil)
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		writeError(h.render, w, http.StatusUnprocessableEntity, "validation failed",
			formatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	order, err := h.checkoutSvc.CreateOrder(r.Context(), cartID, payload)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"order": order})
}

func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	order, err := h.checkoutSvc.GetOrder(r.Context(), code)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"order": order})
}
