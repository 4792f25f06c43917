package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ymerta/vardiya/internal/domain/shift"
	"github.com/ymerta/vardiya/internal/handler/http/response"
	shiftService "github.com/ymerta/vardiya/internal/service/shift"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService *shiftService.ShiftService
}

func NewShiftHandler(svc *shiftService.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: svc}
}

func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Shift create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", created)
}

func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	sh, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sh)
}

// List filters by ?date=YYYY-MM-DD for a single day, or by
// ?year=&month= for a whole month, optionally narrowed with
// ?employee_id=.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter shift.ShiftFilter
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	} else {
		filter.Year, _ = strconv.Atoi(query.Get("year"))
		filter.Month, _ = strconv.Atoi(query.Get("month"))
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	shifts, err := h.shiftService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Shift list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.shiftService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Shift update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", updated)
}

func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Shift delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
