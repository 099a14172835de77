package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/models"
	"github.com/volthome/storefront/app/repositories"
)

type DealerAdminHandler struct {
	dealerRepo repositories.DealerRepositoryImpl
	render     *render.Render
}

func NewDealerAdminHandler(dealerRepo repositories.DealerRepositoryImpl, rnd *render.Render) *DealerAdminHandler {
	return &DealerAdminHandler{dealerRepo: dealerRepo, render: rnd}
}

func (h *DealerAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.dealerRepo.GetAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to list dealers")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"dealers": dealers})
}

type dealerStatusPayload struct {
	Status string `json:"status"`
}

func (h *DealerAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload dealerStatusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSONError(h.render, w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	switch payload.Status {
	case models.DealerStatusPending, models.DealerStatusApproved, models.DealerStatusRejected:
	default:
		writeJSONError(h.render, w, http.StatusUnprocessableEntity, "invalid dealer status")
		return
	}

	if err := h.dealerRepo.UpdateStatus(r.Context(), id, payload.Status); err != nil {
		writeJSONError(h.render, w, http.StatusInternalServerError, "failed to update dealer status")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}
