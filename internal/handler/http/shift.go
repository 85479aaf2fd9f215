package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	EditShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	DeleteShiftGroup(w http.ResponseWriter, r *http.Request)
	ListShiftsByDate(w http.ResponseWriter, r *http.Request)
	ListShiftsByMonth(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// CreateShift implements ShiftHandler. A weekly-fixed shift fans out into
// a full year of records sharing one group id.
func (h *shiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", results)
}

// EditShift implements ShiftHandler.
func (h *shiftHandlerImpl) EditShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shift.EditShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.shiftService.Edit(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", results)
}

// DeleteShift implements ShiftHandler.
func (h *shiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// DeleteShiftGroup implements ShiftHandler. Every occurrence of the
// recurring shift goes, past ones included.
func (h *shiftHandlerImpl) DeleteShiftGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	if err := h.shiftService.DeleteGroup(r.Context(), groupID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift group deleted successfully", nil)
}

// ListShiftsByDate implements ShiftHandler. The date defaults to today
// when the query parameter is absent.
func (h *shiftHandlerImpl) ListShiftsByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	results, err := h.shiftService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListShiftsByMonth implements ShiftHandler.
func (h *shiftHandlerImpl) ListShiftsByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	results, err := h.shiftService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
