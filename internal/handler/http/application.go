package http

import (
	"encoding/json"
	"net/http"

	"github.com/timepick-app/timepick-backend-go/internal/domain/application"
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/response"
)

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.Service
}

func NewApplicationHandler(applicationService application.Service) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
	}
}

// Apply implements ApplicationHandler.
func (h *applicationHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req application.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.applicationService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted successfully", result)
}

// ListMyApplications implements ApplicationHandler.
func (h *applicationHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	results, err := h.applicationService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
