package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
)

type ServiceAdminHandler struct {
	requestRepo repositories.ServiceRequestRepositoryImpl
	render      *render.Render
}

func NewServiceAdminHandler(requestRepo repositories.ServiceRequestRepositoryImpl, rnd *render.Render) *ServiceAdminHandler {
	return &ServiceAdminHandler{requestRepo: requestRepo, render: rnd}
}

func (h *ServiceAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestRepo.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to list service requests")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"service_requests": requests})
}

type requestStatusPayload struct {
	Status string `json:"status"`
}

func (h *ServiceAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload requestStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(h.render, w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	switch payload.Status {
	case models.ServiceRequestStatusOpen,
		models.ServiceRequestStatusScheduled,
		models.ServiceRequestStatusInProgress,
		models.ServiceRequestStatusResolved,
		models.ServiceRequestStatusClosed:
	default:
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, "invalid service request status")
		return
	}

	if err := h.requestRepo.UpdateStatus(r.Context(), id, payload.Status); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to update service request status")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}
