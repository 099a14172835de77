package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/services"
)

type ServiceRequestHandler struct {
	requestSvc *services.ServiceRequestService
	validate   *validator.Validate
	render     *render.Render
}

func NewServiceRequestHandler(requestSvc *services.ServiceRequestService, validate *validator.Validate, rnd *render.Render) *ServiceRequestHandler {
	return &ServiceRequestHandler{requestSvc: requestSvc, validate: validate, render: rnd}
}

func (h *ServiceRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload services.ServiceRequestPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(h.render, w, http.StatusBadRequest, "invalid JSON payload", nil)
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		writeError(h.render, w, http.StatusUnprocessableEntity, "validation failed",
			formatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	request, err := h.requestSvc.Create(r.Context(), payload)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{"service_request": request})
}

func (h *ServiceRequestHandler) Track(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	request, err := h.requestSvc.Track(r.Context(), code)
	if err != nil {
		writeServiceError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"service_request": request})
}
