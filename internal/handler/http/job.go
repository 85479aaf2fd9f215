package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/matching"
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	MatchJobs(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService      job.Service
	matchingService matching.Service
}

func NewJobHandler(jobService job.Service, matchingService matching.Service) JobHandler {
	return &jobHandlerImpl{
		jobService:      jobService,
		matchingService: matchingService,
	}
}

// ListJobs implements JobHandler.
func (h *jobHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	results, err := h.jobService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetJob implements JobHandler.
func (h *jobHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.jobService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MatchJobs implements JobHandler. Postings come back ranked against the
// caller's saved availability, or unranked when nothing is saved.
func (h *jobHandlerImpl) MatchJobs(w http.ResponseWriter, r *http.Request) {
	results, err := h.matchingService.MatchJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
