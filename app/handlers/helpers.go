package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
	"github.com/volthome/storefront/app/services"
)

type errorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func writeError(rnd *render.Render, w http.ResponseWriter, status int, message string, details interface{}) {
	_ = rnd.JSON(w, status, errorResponse{Error: message, Details: details})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// formatValidationErrors flattens validator errors into field → message.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "this field is required"
		case "email":
			out[fe.Field()] = "must be a valid email address"
		case "min":
			out[fe.Field()] = "must be at least " + fe.Param() + " characters"
		case "oneof":
			out[fe.Field()] = "must be one of: " + fe.Param()
		default:
			out[fe.Field()] = "invalid value"
		}
	}
	return out
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation failures are 422, availability conflicts 409, lookups 404.
// Anything unrecognized is a 500 and gets logged.
func writeServiceError(rnd *render.Render, w http.ResponseWriter, err error) {
	var incomplete *services.IncompleteSelectionError
	var invalid *services.InvalidSelectionError

	switch {
	case errors.As(err, &incomplete):
		_ = rnd.JSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "required slots are not fully selected",
			Details: map[string]interface{}{"missing_required_slots": incomplete.MissingSlots},
		})
	case errors.As(err, &invalid):
		writeError(rnd, w, http.StatusUnprocessableEntity, invalid.Error(), nil)
	case errors.Is(err, services.ErrBundleNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrServiceRequestNotFound):
		writeError(rnd, w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrBundleUnavailable),
		errors.Is(err, services.ErrBundleOutOfStock),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrDealerEmailTaken):
		writeError(rnd, w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrCouponInvalid),
		errors.Is(err, services.ErrCouponMinSubtotal),
		errors.Is(err, services.ErrNoCouponApplied),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBundleChildRow):
		writeError(rnd, w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		logrus.WithError(err).Error("unhandled service error")
		writeError(rnd, w, http.StatusInternalServerError, "internal server error", nil)
	}
}
