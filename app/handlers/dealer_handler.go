package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/services"
)

type DealerHandler struct {
	dealerSvc *services.DealerService
	validate  *validator.Validate
	render    *render.Render
}

func NewDealerHandler(dealerSvc *services.DealerService, validate *validator.Validate, rnd *render.Render) *DealerHandler {
	return &DealerHandler{dealerSvc: dealerSvc, validate: validate, render: rnd}
}

func (h *DealerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg services.DealerRegistration
	if err := decodeJSON(r, &reg); err != nil {
		writeError(h.render, w, http.StatusBadRequest, "invalid JSON payload", nil)
		return
	}

	if err := h.validate.Struct(&reg); err != nil {
		writeError(h.render, w, http.StatusUnprocessableEntity, "validation failed",
			formatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	dealer, err := h.dealerSvc.Register(r.Context(), reg)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"dealer": dealer})
}
