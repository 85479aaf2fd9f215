package http

import (
	"encoding/json"
	"net/http"

	"github.com/timepick-app/timepick-backend-go/internal/domain/availability"
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/response"
)

type AvailabilityHandler interface {
	ReplaceAvailability(w http.ResponseWriter, r *http.Request)
	GetAvailability(w http.ResponseWriter, r *http.Request)
}

type availabilityHandlerImpl struct {
	availabilityService availability.Service
}

func NewAvailabilityHandler(availabilityService availability.Service) AvailabilityHandler {
	return &availabilityHandlerImpl{
		availabilityService: availabilityService,
	}
}

// ReplaceAvailability implements AvailabilityHandler. The submitted slot
// set overwrites whatever was saved before.
func (h *availabilityHandlerImpl) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	var req availability.ReplaceAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.availabilityService.Replace(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Availability saved successfully", result)
}

// GetAvailability implements AvailabilityHandler.
func (h *availabilityHandlerImpl) GetAvailability(w http.ResponseWriter, r *http.Request) {
	result, err := h.availabilityService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
